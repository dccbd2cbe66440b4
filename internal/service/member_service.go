package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gymcloud/internal/cache"
	"gymcloud/internal/errors"
	"gymcloud/internal/model"
	"gymcloud/internal/repository"
)

const (
	dateLayout       = "2006-01-02"
	defaultGoal      = "stay fit"
	defaultStatus    = "active"
	defaultMedical   = "none"
	inactiveType     = "inactive"
	statsCachePrefix = "members:stats:"
	statsGenKey      = "members:stats:gen"
)

// MemberService exposes member operations.
type MemberService interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	CreateMember(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error)
	DeleteMember(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.Stats, error)
}

// Options tunes a MemberService. Zero values pick defaults.
type Options struct {
	// Location is the time zone that defines "today" and membership dates.
	Location *time.Location
	// StatsCacheTTL is how long a statistics snapshot is reused. Zero disables caching.
	StatsCacheTTL time.Duration
	// Now replaces the wall clock.
	Now func() time.Time
}

type memberService struct {
	store     repository.MemberStore
	cache     *cache.Client
	validator *MemberValidator
	log       logrus.FieldLogger
	loc       *time.Location
	statsTTL  time.Duration
	now       func() time.Time
}

// NewMemberService builds a MemberService over the given store. cache may be nil.
func NewMemberService(store repository.MemberStore, cache *cache.Client, log logrus.FieldLogger, opts Options) MemberService {
	s := &memberService{
		store:     store,
		cache:     cache,
		validator: NewMemberValidator(),
		log:       log,
		loc:       opts.Location,
		statsTTL:  opts.StatsCacheTTL,
		now:       opts.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// statsKey scopes a snapshot to the day and to the member-set generation, so
// a snapshot computed before a create or delete is never read after it.
func (s *memberService) statsKey(day string, gen int64) string {
	return fmt.Sprintf("%s%s:%d", statsCachePrefix, day, gen)
}

func (s *memberService) invalidateStats(ctx context.Context) {
	s.cache.Incr(ctx, statsGenKey)
}

func (s *memberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.store.Scan(ctx, repository.Filter{})
	if err != nil {
		return nil, fmt.Errorf("scan members: %w", err)
	}
	s.log.WithField("count", len(members)).Info("listed members")
	return members, nil
}

func (s *memberService) CreateMember(ctx context.Context, in *model.CreateMemberRequest) (*model.Member, error) {
	req := *in
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.ValidateCreate(&req); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)
	existing, err := s.store.Scan(ctx, repository.Filter{Email: email})
	if err != nil {
		return nil, fmt.Errorf("check existing member: %w", err)
	}
	if len(existing) > 0 {
		return nil, errors.ErrMemberExists
	}

	member := s.buildMember(&req, email)
	if err := s.store.Put(ctx, member); err != nil {
		// lost a race with a concurrent create for the same email
		if stderrors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.ErrMemberExists
		}
		return nil, fmt.Errorf("save member: %w", err)
	}

	s.invalidateStats(ctx)
	s.log.WithField("member_id", member.ID).Info("member created")
	return member, nil
}

func (s *memberService) buildMember(req *model.CreateMemberRequest, email string) *model.Member {
	now := s.now()
	start := now.In(s.loc)
	createdAt := now.UTC()

	firstName, lastName := req.Name, ""
	if i := strings.Index(req.Name, " "); i >= 0 {
		firstName, lastName = req.Name[:i], req.Name[i+1:]
	}

	membershipType := req.SubscriptionType
	if membershipType == "" {
		membershipType = model.MembershipBasic
	}
	status := req.Status
	if status == "" {
		status = defaultStatus
	}
	goal := defaultGoal
	if req.Goal != nil {
		goal = *req.Goal
	}

	member := &model.Member{
		ID:                  uuid.NewString(),
		FirstName:           firstName,
		LastName:            lastName,
		FullName:            req.Name,
		Email:               email,
		Phone:               NormalizePhone(req.Phone),
		MembershipType:      membershipType,
		MembershipStartDate: start.Format(dateLayout),
		// end date follows the requested type; an unset type runs one month
		MembershipEndDate: start.AddDate(0, 0, model.MembershipDays(req.SubscriptionType)).Format(dateLayout),
		Status:            status,
		IsActive:          true,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
		BirthDate:         req.BirthDate,
		Goal:              goal,
		MedicalInfo: model.MedicalInfo{
			Allergies:  defaultMedical,
			Conditions: defaultMedical,
		},
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		member.EmergencyContact = *req.EmergencyContact
	}
	if req.MedicalInfo != nil {
		member.MedicalInfo = *req.MedicalInfo
	}
	return member
}

func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.ErrMemberNotFound
		}
		return fmt.Errorf("get member %s: %w", id, err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member %s: %w", id, err)
	}

	s.invalidateStats(ctx)
	s.log.WithField("member_id", id).Info("member deleted")
	return nil
}

func (s *memberService) Stats(ctx context.Context) (*model.Stats, error) {
	now := s.now()
	var key string
	if s.statsTTL > 0 {
		key = s.statsKey(now.In(s.loc).Format(dateLayout), s.cache.Counter(ctx, statsGenKey))
		var cached model.Stats
		if s.cache.GetJSON(ctx, key, &cached) {
			return &cached, nil
		}
	}

	members, err := s.store.Scan(ctx, repository.Filter{})
	if err != nil {
		return nil, fmt.Errorf("scan members: %w", err)
	}
	stats := ComputeStats(members, now, s.loc)

	if s.statsTTL > 0 {
		_ = s.cache.SetJSON(ctx, key, stats, s.statsTTL)
	}
	return stats, nil
}

// ComputeStats aggregates members in a single pass. A member is new today
// when its creation instant falls on the same calendar day as now in loc.
func ComputeStats(members []model.Member, now time.Time, loc *time.Location) *model.Stats {
	y, m, d := now.In(loc).Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &model.Stats{
		TotalMembers:    len(members),
		MembershipTypes: make(map[string]int, len(model.KnownMembershipTypes)),
	}
	for _, t := range model.KnownMembershipTypes {
		stats.MembershipTypes[t] = 0
	}

	for _, member := range members {
		if !member.CreatedAt.Before(dayStart) && member.CreatedAt.Before(dayEnd) {
			stats.NewMembersToday++
		}
		if member.IsActive {
			stats.ActiveMembers++
		}
		if member.MembershipType != "" && member.MembershipType != inactiveType {
			stats.ActiveSubscriptions++
		}

		membershipType := member.MembershipType
		if membershipType == "" {
			membershipType = model.MembershipBasic
		}
		if _, ok := stats.MembershipTypes[membershipType]; ok {
			stats.MembershipTypes[membershipType]++
		}
	}
	return stats
}
