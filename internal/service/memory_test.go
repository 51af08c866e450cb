package service

import (
	"context"
	"sort"
	"time"

	"github.com/costmanager/costmanager-server/internal/model"
)

// memoryUserStore and memoryCostStore are in-process stores used by the
// property-style tests that need real filtering behavior.
type memoryUserStore struct {
	users map[string]model.User
}

func newMemoryUserStore(ids ...string) *memoryUserStore {
	s := &memoryUserStore{users: map[string]model.User{}}
	for _, id := range ids {
		s.users[id] = model.User{ID: id, FirstName: "First " + id, LastName: "Last " + id}
	}
	return s
}

func (s *memoryUserStore) GetByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memoryUserStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

func (s *memoryUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	if _, ok := s.users[user.ID]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	s.users[user.ID] = user
	return user, nil
}

type memoryCostStore struct {
	costs []model.Cost
}

func (s *memoryCostStore) Create(_ context.Context, cost model.Cost) (model.Cost, error) {
	s.costs = append(s.costs, cost)
	return cost, nil
}

func (s *memoryCostStore) GetByUserIDBetween(_ context.Context, userID string, from, to time.Time) ([]model.Cost, error) {
	var out []model.Cost
	for _, c := range s.costs {
		if c.UserID == userID && !c.CreatedAt.Before(from) && c.CreatedAt.Before(to) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memoryCostStore) SumByUserID(_ context.Context, userID string) (float64, error) {
	var total float64
	for _, c := range s.costs {
		if c.UserID == userID {
			total += c.Sum
		}
	}
	return total, nil
}
