package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hearth/internal/audit"
	"hearth/internal/domain"
	"hearth/internal/password"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

type CreateUserParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	IsAdmin   bool
}

// CreateUser registers an account. Email uniqueness is checked inside the
// same transaction as the insert; the postgres unique index is the backstop
// for anything that slips past the check.
func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error) {
	if len(params.Password) < s.rules.MinPasswordLen {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", s.rules.MinPasswordLen))
	}
	hash, err := password.Hash(params.Password)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(uuid.NewString(), params.Email, params.FirstName,
		params.LastName, hash, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	user.IsAdmin = params.IsAdmin

	err = s.store.RunInTx(ctx, func(ctx context.Context) error {
		taken, err := s.emailTaken(ctx, user.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return dErrors.New(dErrors.CodeConflict, "email is already registered")
		}
		if err := s.store.Save(ctx, user); err != nil {
			return saveError(domain.KindUser, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.created(ctx, domain.KindUser, user.ID)
	return user, nil
}

// Authenticate verifies credentials and returns the account. Unknown email
// and wrong password report the same error so the response does not reveal
// which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, cleartext string) (*domain.User, error) {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementLogin("failure")
		}
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, err
	}
	if err := password.Verify(cleartext, user.PasswordHash); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementLogin("failure")
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementLogin("success")
	}
	s.emitAudit(ctx, audit.ActionLogin, domain.KindUser, user.ID)
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	record, err := s.store.Get(ctx, domain.KindUser, id)
	if err != nil {
		return nil, lookupError(domain.KindUser, err)
	}
	return record.(*domain.User), nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	records, err := s.store.GetAll(ctx, domain.KindUser)
	if err != nil {
		return nil, lookupError(domain.KindUser, err)
	}
	users := make([]*domain.User, 0, len(records))
	for _, record := range records {
		users = append(users, record.(*domain.User))
	}
	return users, nil
}

type UpdateUserParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string // empty keeps the current password
}

// UpdateUser replaces profile fields. Only the account owner or an admin may
// call it; admin status itself never changes through this path.
func (s *Service) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*domain.User, error) {
	if err := s.authorizeOwner(ctx, id); err != nil {
		return nil, err
	}

	var updated *domain.User
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetUser(ctx, id)
		if err != nil {
			return err
		}
		hash := current.PasswordHash
		if params.Password != "" {
			if len(params.Password) < s.rules.MinPasswordLen {
				return dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("password must be at least %d characters", s.rules.MinPasswordLen))
			}
			if hash, err = password.Hash(params.Password); err != nil {
				return err
			}
		}
		next, err := domain.NewUser(current.ID, params.Email, params.FirstName,
			params.LastName, hash, current.CreatedAt)
		if err != nil {
			return err
		}
		next.IsAdmin = current.IsAdmin
		if next.Email != current.Email {
			taken, err := s.emailTaken(ctx, next.Email, current.ID)
			if err != nil {
				return err
			}
			if taken {
				return dErrors.New(dErrors.CodeConflict, "email is already registered")
			}
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindUser, err)
		}
		updated = record.(*domain.User)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindUser, id)
	return updated, nil
}

// DeleteUser removes an account. Accounts that still host places or have
// authored reviews are protected; absent ids report false without error.
func (s *Service) DeleteUser(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindUser, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindUser, err)
		}
		inUse, err := s.userReferenced(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return dErrors.New(dErrors.CodeConflict, "user still hosts places or has reviews")
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindUser, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindUser, id)
	}
	return removed, nil
}

func (s *Service) userByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
}

func (s *Service) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, user := range users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) userReferenced(ctx context.Context, userID string) (bool, error) {
	places, err := s.ListPlaces(ctx)
	if err != nil {
		return false, err
	}
	for _, place := range places {
		if place.HostID == userID {
			return true, nil
		}
	}
	reviews, err := s.listAllReviews(ctx)
	if err != nil {
		return false, err
	}
	for _, review := range reviews {
		if review.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
