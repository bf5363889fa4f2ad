package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

const (
	userListCacheKey = "users:all"
	userListCacheTTL = 60 * time.Second
)

// UserService manages the user collection with an optional cache-aside
// Redis layer on the list path. A nil Cache disables caching entirely.
type UserService struct {
	Ledger    repositories.Ledger
	Cache     *redis.Client
	RequestID string
}

// Create registers a user without credentials (operator-entered
// records). Signup with a password goes through the auth handler.
func (s UserService) Create(ctx context.Context, name, emailAddr, phone string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, domain.Invalid("name", "is required")
	}

	emailAddr = strings.TrimSpace(emailAddr)
	if emailAddr != "" {
		if _, exists := s.Ledger.UserByEmail(emailAddr); exists {
			return models.User{}, domain.Conflict("user", "email already registered")
		}
	}

	user := models.User{
		Name:  name,
		Email: emailAddr,
		Phone: strings.TrimSpace(phone),
		Role:  models.RoleUser,
	}
	if err := s.Ledger.CreateUser(&user); err != nil {
		return models.User{}, err
	}

	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "user", "create", "user_id="+user.ID)
	return user, nil
}

// List serves the user collection cache-aside: Redis hit wins, a miss
// reads the ledger and repopulates. Cache failures degrade to the
// ledger, never to an error.
func (s UserService) List(ctx context.Context) []models.User {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, userListCacheKey).Bytes()
		if err == nil {
			var users []models.User
			if json.Unmarshal(data, &users) == nil {
				utils.LogEvent(s.RequestID, "user", "list_cache_hit", "count="+strconv.Itoa(len(users)))
				return users
			}
		}
	}

	users := s.Ledger.ListUsers()

	if s.Cache != nil {
		if data, err := json.Marshal(users); err == nil {
			if err := s.Cache.Set(ctx, userListCacheKey, data, userListCacheTTL).Err(); err != nil {
				utils.LogEvent(s.RequestID, "user", "cache_set_failed", err.Error())
			}
		}
	}
	return users
}

func (s UserService) Get(id string) (models.User, error) {
	user, ok := s.Ledger.UserByID(id)
	if !ok {
		return models.User{}, domain.NotFound("user", id)
	}
	return user, nil
}

func (s UserService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, userListCacheKey).Err(); err != nil {
		utils.LogEvent(s.RequestID, "user", "cache_invalidate_failed", err.Error())
	}
}
