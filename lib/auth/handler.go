package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"hiring-backend/db"
	userstore "hiring-backend/lib/users/store"
	authutils "hiring-backend/lib/utils/auth-utils"
	"hiring-backend/models"
	authapimodels "hiring-backend/models/api/auth"
	dbmodels "hiring-backend/models/db"
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error)
	Login(req authapimodels.LoginRequest) (resp authapimodels.TokenResponse, err error)
	Me(userID string) (view authapimodels.UserView, err error)
	UpdatePassword(userID string, req authapimodels.UpdatePasswordRequest) error
	UpdateRole(req authapimodels.UpdateRoleRequest) error
	List() ([]authapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Register(req authapimodels.RegisterRequest) (resp authapimodels.TokenResponse, err error) {
	existing, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return resp, err
	}
	if existing != nil {
		return resp, models.NewConflict("a user with this email already exists")
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return resp, err
	}
	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	id, err := i.store.Create(dbmodels.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	})
	if err != nil {
		return resp, err
	}
	log.WithField("user_id", id).Info("user registered")
	return i.tokenFor(id)
}

func (i impl) Login(req authapimodels.LoginRequest) (resp authapimodels.TokenResponse, err error) {
	user, err := i.store.GetByEmail(req.Email)
	if err != nil {
		return resp, err
	}
	if user == nil || !authutils.CheckPassword(user.PasswordHash, req.Password) {
		return resp, models.NewInvalidTransition("invalid email or password")
	}
	if !user.Active {
		return resp, models.NewInvalidTransition("user account is disabled")
	}
	err = i.store.Update(user.ID, map[string]interface{}{
		"last_login": time.Now(),
	})
	if err != nil {
		return resp, err
	}
	return i.tokenFor(user.ID)
}

func (i impl) Me(userID string) (view authapimodels.UserView, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return view, err
	}
	if user == nil {
		return view, models.NewNotFound("user not found")
	}
	return toUserView(*user), nil
}

func (i impl) UpdatePassword(userID string, req authapimodels.UpdatePasswordRequest) error {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFound("user not found")
	}
	if !authutils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return models.NewInvalidTransition("current password does not match")
	}
	hash, err := authutils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return i.store.Update(userID, map[string]interface{}{
		"password_hash":       hash,
		"password_changed_at": time.Now(),
	})
}

func (i impl) UpdateRole(req authapimodels.UpdateRoleRequest) error {
	user, err := i.store.GetByID(req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFound("user not found")
	}
	return i.store.Update(req.UserID, map[string]interface{}{
		"role": req.NewRole,
	})
}

func (i impl) List() ([]authapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	views := make([]authapimodels.UserView, 0, len(list))
	for _, rec := range list {
		views = append(views, toUserView(rec))
	}
	return views, nil
}

func (i impl) tokenFor(userID string) (resp authapimodels.TokenResponse, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return resp, err
	}
	if user == nil {
		return resp, models.NewNotFound("user not found")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return resp, err
	}
	return authapimodels.TokenResponse{
		Token: token,
		User:  toUserView(*user),
	}, nil
}

func toUserView(rec dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:     rec.ID,
		Name:   rec.Name,
		Email:  rec.Email,
		Role:   rec.Role,
		Active: rec.Active,
	}
}
