package account

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/media"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
	"github.com/wildmart/wildmart-go/pkg/session"
)

type accountAPI interface {
	GetAccount(ctx context.Context) (*api.AccountPayload, error)
	UpdateAccount(ctx context.Context, input api.AccountInput) (*api.AccountPayload, error)
	BecomeSeller(ctx context.Context) (*api.AccountPayload, error)
}

// Service drives the account views: profile edit, avatar staging, and the
// become-seller flow. It keeps the session profile cache in step with
// server responses.
type Service struct {
	api      accountAPI
	sessions *session.Store
	log      *logger.Logger
	validate *validator.Validate
	maxPhoto int64
}

// NewService builds the account service. maxPhotoBytes caps staged avatar
// uploads.
func NewService(client accountAPI, sessions *session.Store, log *logger.Logger, maxPhotoBytes int64) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session store is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{
		api:      client,
		sessions: sessions,
		log:      log,
		validate: validator.New(),
		maxPhoto: maxPhotoBytes,
	}, nil
}

// Profile fetches the account and refreshes the session cache.
func (s *Service) Profile(ctx context.Context) (*api.AccountPayload, error) {
	payload, err := s.api.GetAccount(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch account failed", err)
		return nil, err
	}
	s.cacheProfile(payload)
	return payload, nil
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	FullName        string `validate:"required,max=120"`
	Username        string `validate:"required,min=3,max=40"`
	ShippingAddress string `validate:"max=500"`
	ImageURL        string `validate:"omitempty,url"`
}

// UpdateProfile validates and saves the profile, then refreshes the
// session cache from the response.
func (s *Service) UpdateProfile(ctx context.Context, form ProfileForm) (*api.AccountPayload, error) {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Username = strings.TrimSpace(form.Username)
	if err := s.validate.Struct(form); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "please fill in the required profile fields")
	}

	payload, err := s.api.UpdateAccount(ctx, api.AccountInput{
		FullName:        form.FullName,
		Username:        form.Username,
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		ImageURL:        form.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.cacheProfile(payload)
	return payload, nil
}

// StageAvatar validates a prospective profile photo before it is cropped
// and uploaded by the caller.
func (s *Service) StageAvatar(filename string, data []byte) (*media.StagedImage, error) {
	return media.StageImage(filename, data, s.maxPhoto)
}

// BecomeSeller upgrades the account and refreshes the session cache.
func (s *Service) BecomeSeller(ctx context.Context) (*api.AccountPayload, error) {
	payload, err := s.api.BecomeSeller(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheProfile(payload)
	return payload, nil
}

func (s *Service) cacheProfile(payload *api.AccountPayload) {
	if payload == nil {
		return
	}
	_ = s.sessions.SetUser(&session.Profile{
		UserID:   payload.UserID,
		Email:    payload.Email,
		Username: payload.Username,
		FullName: payload.FullName,
		IsSeller: payload.IsSeller,
	})
}
