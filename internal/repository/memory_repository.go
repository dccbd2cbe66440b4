package repository

import (
	"context"
	"sort"
	"sync"

	"gymcloud/internal/model"
)

// MemoryStore keeps members in process memory. It enforces the same id and
// email uniqueness as the SQL store.
type MemoryStore struct {
	mu      sync.RWMutex
	members map[string]model.Member
	emails  map[string]string
}

var _ MemberStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: make(map[string]model.Member),
		emails:  make(map[string]string),
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &member, nil
}

func (s *MemoryStore) Put(ctx context.Context, member *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; ok {
		return ErrDuplicateKey
	}
	if _, ok := s.emails[member.Email]; ok {
		return ErrDuplicateKey
	}
	s.members[member.ID] = *member
	s.emails[member.Email] = member.ID
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if member, ok := s.members[id]; ok {
		delete(s.emails, member.Email)
		delete(s.members, id)
	}
	return nil
}

func (s *MemoryStore) Scan(ctx context.Context, filter Filter) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]model.Member, 0, len(s.members))
	for _, m := range s.members {
		if filter.matches(&m) {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].ID < members[j].ID
		}
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}
