package model

import "time"

// Membership types known to the statistics breakdown.
const (
	MembershipMonthly   = "monthly"
	MembershipQuarterly = "quarterly"
	MembershipYearly    = "yearly"
	MembershipPremium   = "premium"
	MembershipBasic     = "basic"
)

// KnownMembershipTypes lists the types counted per bucket in statistics.
var KnownMembershipTypes = []string{
	MembershipMonthly,
	MembershipQuarterly,
	MembershipYearly,
	MembershipBasic,
	MembershipPremium,
}

// Address is the postal address of a member.
type Address struct {
	Street  string `json:"street" gorm:"size:255"`
	City    string `json:"city" gorm:"size:120"`
	ZipCode string `json:"zipCode" gorm:"size:20"`
}

// EmergencyContact is the person to call when something goes wrong at the gym.
type EmergencyContact struct {
	Name         string `json:"name" gorm:"size:255"`
	Phone        string `json:"phone" gorm:"size:32"`
	Relationship string `json:"relationship" gorm:"size:64"`
}

// MedicalInfo holds free-text medical notes.
type MedicalInfo struct {
	Allergies  string `json:"allergies" gorm:"size:512"`
	Conditions string `json:"conditions" gorm:"size:512"`
}

// Member is a gym membership record, keyed by a service-assigned id.
type Member struct {
	ID                  string           `json:"userId" gorm:"column:user_id;type:char(36);primaryKey"`
	FirstName           string           `json:"firstName" gorm:"size:255"`
	LastName            string           `json:"lastName" gorm:"size:255"`
	FullName            string           `json:"fullName" gorm:"size:255;not null"`
	Email               string           `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lower-cased
	Phone               string           `json:"phone" gorm:"size:32"`
	MembershipType      string           `json:"membershipType" gorm:"size:32;index"`
	MembershipStartDate string           `json:"membershipStartDate" gorm:"size:10"`
	MembershipEndDate   string           `json:"membershipEndDate" gorm:"size:10"`
	Status              string           `json:"status" gorm:"size:32"`
	IsActive            bool             `json:"isActive" gorm:"index"`
	CreatedAt           time.Time        `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time        `json:"updatedAt" gorm:"autoUpdateTime:false"`
	BirthDate           string           `json:"birthDate" gorm:"size:10"`
	Goal                string           `json:"goal" gorm:"size:255"`
	Address             Address          `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	EmergencyContact    EmergencyContact `json:"emergencyContact" gorm:"embedded;embeddedPrefix:emergency_"`
	MedicalInfo         MedicalInfo      `json:"medicalInfo" gorm:"embedded;embeddedPrefix:medical_"`
}

// CreateMemberRequest is the payload accepted when registering a member.
// Pointers distinguish an absent optional block from an empty one.
type CreateMemberRequest struct {
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email" validate:"required,member_email"`
	Phone            string            `json:"phone" validate:"omitempty,member_phone"`
	SubscriptionType string            `json:"subscriptionType"`
	Status           string            `json:"status"`
	BirthDate        string            `json:"birthDate"`
	Goal             *string           `json:"goal"`
	Address          *Address          `json:"address"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	MedicalInfo      *MedicalInfo      `json:"medicalInfo"`
}

// Stats is the aggregate view over all stored members.
type Stats struct {
	TotalMembers        int            `json:"totalMembers"`
	NewMembersToday     int            `json:"newMembersToday"`
	ActiveMembers       int            `json:"activeMembers"`
	ActiveSubscriptions int            `json:"activeSubscriptions"`
	MembershipTypes     map[string]int `json:"membershipTypes"`
}

// MembershipDays returns how long a membership of the given type runs.
// Types without a fixed duration get one month.
func MembershipDays(membershipType string) int {
	switch membershipType {
	case MembershipQuarterly:
		return 90
	case MembershipYearly, MembershipPremium:
		return 365
	default:
		return 30
	}
}
