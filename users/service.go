package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/eventos-go/apperror"
	"github.com/user/eventos-go/auth"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// UserService defines the user account operations. Handlers depend on this
// interface; the pgx-backed implementation below is the production one.
// UserByID doubles as the auth guard's user loader.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	UserByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*auth.User, error)
}

type userService struct {
	db     *pgxpool.Pool
	tokens *auth.TokenService
	logger zerolog.Logger
}

// NewUserService creates the pgx-backed UserService.
func NewUserService(db *pgxpool.Pool, tokens *auth.TokenService, logger zerolog.Logger) UserService {
	return &userService{db: db, tokens: tokens, logger: logger}
}

// Register creates a new user account. E-mail uniqueness is pre-checked and
// also enforced by the unique constraint, so a race between two concurrent
// registrations still resolves to the same 422 for the loser. E-mails are
// stored and matched exactly as sent.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, req.Email).Scan(&exists)
	if err != nil {
		return nil, apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
	}
	if exists {
		return nil, apperror.NewConflictError("Por favor, utilize outro e-mail!", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &auth.User{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashed),
	}

	query := `INSERT INTO users (id, name, email, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at, updated_at`
	err = s.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("Por favor, utilize outro e-mail!", nil)
		}
		return nil, apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("Houve um erro, por favor tente mais tarde!", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return &AuthResponse{ID: user.ID, Token: token}, nil
}

// Login authenticates a user by e-mail and password and issues a token.
// An unknown e-mail is a 404; a wrong password is a 422.
func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewValidationError("Senha inválida!", nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("Houve um erro, por favor tente mais tarde!", err)
	}

	return &AuthResponse{ID: user.ID, Token: token}, nil
}

// UserByID retrieves a user by id. It is the loader behind the auth guard.
func (s *userService) UserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Usuário não encontrado!", nil)
		}
		return nil, apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
	}
	return &user, nil
}

// Update applies a partial profile update. A field is replaced only when it
// is present in the payload; the password is re-hashed when supplied.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*auth.User, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, *req.Name)
		argID++
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argID))
		args = append(args, string(hashed))
		argID++
	}

	if len(setClauses) == 0 {
		// Nothing to change; return the current record.
		return s.UserByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, created_at, updated_at
	`, strings.Join(setClauses, ", "), argID)

	var user auth.User
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Usuário não encontrado!", nil)
		}
		return nil, apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
	}

	return &user, nil
}

// userByEmail retrieves a user by their e-mail address, matched exactly.
func (s *userService) userByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = $1`
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Usuário não encontrado!", nil)
		}
		return nil, apperror.NewDatabaseError("Houve um erro, por favor tente mais tarde!", err)
	}
	return &user, nil
}
