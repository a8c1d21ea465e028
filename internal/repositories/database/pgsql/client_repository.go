package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	"github.com/corebanc/bankledger_app/internal/models"
	"github.com/corebanc/bankledger_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db Querier) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, name, birth_date, document_number, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.DB.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.BirthDate,
		modelClient.DocumentNumber,
		modelClient.Email,
		modelClient.PasswordHash,
		modelClient.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client with the same email or document", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return r.findClientBy(ctx, "client_id", clientID)
}

func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findClientBy(ctx, "email", email)
}

func (r *PgxClientRepository) FindClientByDocument(ctx context.Context, documentNumber string) (*domain.Client, error) {
	return r.findClientBy(ctx, "document_number", documentNumber)
}

// findClientBy loads a client by one of the unique columns. The column name is
// fixed by the callers above, never caller input.
func (r *PgxClientRepository) findClientBy(ctx context.Context, column, value string) (*domain.Client, error) {
	query := fmt.Sprintf(`
		SELECT client_id, name, birth_date, document_number, email, password_hash, created_at
		FROM clients
		WHERE %s = $1;
	`, column)

	var modelClient models.Client
	err := r.DB.QueryRow(ctx, query, value).Scan(
		&modelClient.ClientID,
		&modelClient.Name,
		&modelClient.BirthDate,
		&modelClient.DocumentNumber,
		&modelClient.Email,
		&modelClient.PasswordHash,
		&modelClient.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by %s: %w", column, err)
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}
