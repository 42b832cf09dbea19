package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error)
	// GetByAuthID looks up the local user by the identity-provider subject.
	// It is the only unscoped lookup: the auth middleware uses it to
	// resolve the caller's tenant.
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.UserStats, error)
}

type userRepo struct {
	db Database
}

func NewUserRepository(db Database) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, tenant_id, auth_id, email, first_name, last_name, role, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.TenantID, &u.AuthID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, tenant_id, auth_id, email, first_name, last_name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.TenantID, user.AuthID, user.Email, user.FirstName, user.LastName, user.Role, user.IsActive)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE tenant_id = $1 AND id = $2
	`
	return scanUser(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *userRepo) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE auth_id = $1
	`
	return scanUser(r.db.QueryRow(ctx, query, authID))
}

func (r *userRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE tenant_id = $1 AND email = $2
	`
	return scanUser(r.db.QueryRow(ctx, query, tenantID, email))
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, role = $4, is_active = $5, updated_at = NOW()
		WHERE tenant_id = $6 AND id = $7
	`
	_, err := r.db.Exec(ctx, query, user.Email, user.FirstName, user.LastName, user.Role, user.IsActive, user.TenantID, user.ID)
	return err
}

func (r *userRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM users WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *userRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.UserStats, error) {
	stats := &models.UserStats{ByRole: make(map[string]int)}
	query := `
		SELECT role, COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM users
		WHERE tenant_id = $1
		GROUP BY role
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var total, active int
		if err := rows.Scan(&role, &total, &active); err != nil {
			return nil, err
		}
		stats.ByRole[role] = total
		stats.Total += total
		stats.Active += active
	}
	return stats, rows.Err()
}
