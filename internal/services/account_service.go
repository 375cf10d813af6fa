package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/models/response_models"
	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type AccountServiceInterface interface {
	RegisterStudent(ctx context.Context, request request_models.StudentRegistrationRequest) error
	RegisterExternal(ctx context.Context, request request_models.ExternalRegistrationRequest) error
	RegisterOrganiser(ctx context.Context, request request_models.OrganiserRegistrationRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AccountService struct {
	userRepo    repositories.UserRepository
	mailService MailService
	logger      *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, mailService MailService, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		mailService: mailService,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := normalizeEmail(request.Email)

	account, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		// Same answer as a wrong password: callers cannot probe which
		// emails are registered.
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.Email, string(account.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		Email: account.Email,
		Role:  string(account.Role),
	}, nil
}

func (a *AccountService) RegisterStudent(ctx context.Context, request request_models.StudentRegistrationRequest) error {
	user, err := a.newAccount(ctx, request.Email, request.Password, request.ConfirmPassword, db_models.RoleStudent)
	if err != nil {
		return err
	}

	profile := &db_models.Student{
		UserEmail:  user.Email,
		Name:       request.Name,
		RollNumber: request.RollNumber,
	}
	if err := a.userRepo.CreateStudent(ctx, user, profile); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return err
		}
		return utils.ErrDatabaseError
	}

	a.mailService.Notify(user.Email, "Welcome to CFMS", "You have registered as Student.")
	return nil
}

func (a *AccountService) RegisterExternal(ctx context.Context, request request_models.ExternalRegistrationRequest) error {
	user, err := a.newAccount(ctx, request.Email, request.Password, request.ConfirmPassword, db_models.RoleExternal)
	if err != nil {
		return err
	}

	profile := &db_models.ExternalParticipant{
		UserEmail:   user.Email,
		Name:        request.Name,
		CollegeName: request.CollegeName,
	}
	if err := a.userRepo.CreateExternal(ctx, user, profile); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return err
		}
		return utils.ErrDatabaseError
	}

	a.mailService.Notify(user.Email, "Welcome to CFMS", "You have registered as External Participant.")
	return nil
}

func (a *AccountService) RegisterOrganiser(ctx context.Context, request request_models.OrganiserRegistrationRequest) error {
	user, err := a.newAccount(ctx, request.Email, request.Password, request.ConfirmPassword, db_models.RoleOrganizer)
	if err != nil {
		return err
	}

	profile := &db_models.Organiser{
		UserEmail: user.Email,
		Name:      request.Name,
	}
	if err := a.userRepo.CreateOrganiser(ctx, user, profile); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return err
		}
		return utils.ErrDatabaseError
	}

	a.mailService.Notify(user.Email, "Welcome to CFMS", "You have registered as Organizer.")
	return nil
}

// newAccount runs the role-independent half of registration: password
// confirmation, duplicate pre-check, hashing.
func (a *AccountService) newAccount(ctx context.Context, email, password, confirm string, role db_models.Role) (*db_models.User, error) {
	if password != confirm {
		return nil, utils.ErrPasswordMismatch
	}

	email = normalizeEmail(email)

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		a.logger.Error("password hashing failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &db_models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
