package repository

import (
	"context"
	"database/sql"

	"go-railway-admin/internal/model"
	"go-railway-admin/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// UserRepository persists admins and customers in one table, discriminated
// by the user_type column. full_name and email are NULL for admins.
type UserRepository interface {
	Save(ctx context.Context, user *model.User)
	FindAll(ctx context.Context) []*model.User
	FindByUsername(ctx context.Context, username string) *model.User
	Update(ctx context.Context, user *model.User) bool
	Delete(ctx context.Context, username string) bool
	ClearAll(ctx context.Context)
	ClearAllExceptAdmins(ctx context.Context)
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
		log:  logger.WithComponent("repository"),
	}
}

// Save inserts the user, or updates the existing row when the username is
// already present.
func (r *UserRepositoryImpl) Save(ctx context.Context, user *model.User) {
	if r.pool == nil {
		return
	}

	if existing := r.FindByUsername(ctx, user.Username); existing != nil {
		r.Update(ctx, user)
		return
	}

	query := `
		INSERT INTO users (username, password, user_type, full_name, email)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		user.Username, user.Password, string(user.Role),
		nullable(user.FullName), nullable(user.Email))
	if err != nil {
		r.log.Error("save user", zap.String("username", user.Username), zap.Error(err))
	}
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) []*model.User {
	users := make([]*model.User, 0)
	if r.pool == nil {
		return users
	}

	query := `SELECT username, password, user_type, full_name, email FROM users ORDER BY username`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("find all users", zap.Error(err))
		return users
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("scan user", zap.Error(err))
			return users
		}
		if user != nil {
			users = append(users, user)
		}
	}

	if err := rows.Err(); err != nil {
		r.log.Error("find all users", zap.Error(err))
	}

	return users
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) *model.User {
	if r.pool == nil {
		return nil
	}

	query := `SELECT username, password, user_type, full_name, email FROM users WHERE username = $1`
	row := r.pool.QueryRow(ctx, query, username)
	user, err := scanUser(row)
	if err != nil {
		if err != pgx.ErrNoRows {
			r.log.Error("find user", zap.String("username", username), zap.Error(err))
		}
		return nil
	}

	return user
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *model.User) bool {
	if r.pool == nil {
		return false
	}

	var result pgconn.CommandTag
	var err error
	if user.IsAdmin() {
		query := `UPDATE users SET password = $1 WHERE username = $2`
		result, err = r.pool.Exec(ctx, query, user.Password, user.Username)
	} else {
		query := `UPDATE users SET password = $1, full_name = $2, email = $3 WHERE username = $4`
		result, err = r.pool.Exec(ctx, query, user.Password, user.FullName, user.Email, user.Username)
	}
	if err != nil {
		r.log.Error("update user", zap.String("username", user.Username), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, username string) bool {
	if r.pool == nil {
		return false
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		r.log.Error("delete user", zap.String("username", username), zap.Error(err))
		return false
	}
	return result.RowsAffected() > 0
}

func (r *UserRepositoryImpl) ClearAll(ctx context.Context) {
	if r.pool == nil {
		return
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM users`); err != nil {
		r.log.Error("clear users", zap.Error(err))
	}
}

// ClearAllExceptAdmins removes customer accounts but keeps admins, so the
// system stays administrable after a reset.
func (r *UserRepositoryImpl) ClearAllExceptAdmins(ctx context.Context) {
	if r.pool == nil {
		return
	}

	query := `DELETE FROM users WHERE user_type != $1`
	if _, err := r.pool.Exec(ctx, query, string(model.RoleAdmin)); err != nil {
		r.log.Error("clear customer accounts", zap.Error(err))
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var username, password, userType string
	var fullName, email sql.NullString
	if err := row.Scan(&username, &password, &userType, &fullName, &email); err != nil {
		return nil, err
	}

	switch model.UserRole(userType) {
	case model.RoleAdmin:
		return model.NewAdmin(username, password), nil
	case model.RoleCustomer:
		return model.NewCustomer(username, password, fullName.String, email.String), nil
	}
	// Unknown user_type rows are skipped.
	return nil, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
