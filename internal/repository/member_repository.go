package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"gymcloud/internal/model"
)

var (
	// ErrNotFound is returned by Get when no member has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned by Put when the id or email is already stored.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Filter narrows a scan. The zero value matches every member.
type Filter struct {
	// Email matches the stored, lower-cased email exactly.
	Email string
}

func (f Filter) matches(m *model.Member) bool {
	return f.Email == "" || m.Email == strings.ToLower(f.Email)
}

// MemberStore is the record store capability the service depends on: point
// get, point put, point delete and full scan.
type MemberStore interface {
	Get(ctx context.Context, id string) (*model.Member, error)
	Put(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context, filter Filter) ([]model.Member, error)
}

type memberRepository struct {
	db    *gorm.DB
	table string
}

// NewMemberRepository builds a GORM-backed store over the given table.
func NewMemberRepository(db *gorm.DB, table string) MemberStore {
	return &memberRepository{db: db, table: table}
}

// Migrate creates the members table and its unique email index.
func Migrate(db *gorm.DB, table string) error {
	return db.Table(table).AutoMigrate(&model.Member{})
}

func (r *memberRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *memberRepository) Get(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	if err := r.query(ctx).Where("user_id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Put inserts a new member. The unique email index turns a concurrent
// duplicate into ErrDuplicateKey instead of a second row.
func (r *memberRepository) Put(ctx context.Context, member *model.Member) error {
	if err := r.query(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return r.query(ctx).Where("user_id = ?", id).Delete(&model.Member{}).Error
}

func (r *memberRepository) Scan(ctx context.Context, filter Filter) ([]model.Member, error) {
	q := r.query(ctx)
	if filter.Email != "" {
		q = q.Where("email = ?", strings.ToLower(filter.Email))
	}
	members := []model.Member{}
	if err := q.Order("created_at").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
