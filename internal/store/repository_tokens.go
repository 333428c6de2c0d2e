package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/models"
)

type tokenRepository struct {
	*DB
	logger *logger.Logger
}

func NewTokenRepository(db *DB, log *logger.Logger) TokenStore {
	return &tokenRepository{
		DB:     db,
		logger: log,
	}
}

// Load implements [TokenStore]. An absent scope yields (nil, nil): the engine
// treats a missing token as "sync this scope from the beginning of time".
func (t *tokenRepository) Load(ctx context.Context, scope models.TokenScope) (models.ChangeToken, error) {
	log := logger.FromContext(ctx)

	var token []byte
	err := t.DB.QueryRowContext(ctx, loadToken, string(scope)).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Load").
			Str("scope", string(scope)).
			Msg("failed to load change token")
		return nil, fmt.Errorf("failed to load token for scope %s: %w", scope, err)
	}

	return token, nil
}

// Save implements [TokenStore].
func (t *tokenRepository) Save(ctx context.Context, scope models.TokenScope, token models.ChangeToken) error {
	log := logger.FromContext(ctx)

	if len(token) == 0 {
		return fmt.Errorf("refusing to save empty token for scope %s", scope)
	}

	_, err := t.DB.ExecContext(ctx, saveToken, string(scope), []byte(token))
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Save").
			Str("scope", string(scope)).
			Msg("failed to save change token")
		return fmt.Errorf("failed to save token for scope %s: %w", scope, err)
	}

	return nil
}

// Clear implements [TokenStore].
func (t *tokenRepository) Clear(ctx context.Context, scope models.TokenScope) error {
	log := logger.FromContext(ctx)

	_, err := t.DB.ExecContext(ctx, clearToken, string(scope))
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Clear").
			Str("scope", string(scope)).
			Msg("failed to clear change token")
		return fmt.Errorf("failed to clear token for scope %s: %w", scope, err)
	}

	return nil
}
