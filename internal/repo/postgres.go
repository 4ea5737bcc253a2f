package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/pkg/trm"
)

const uniqueViolation = "23505"

var orderColumns = []string{
	"id", "etsy_order_id", "access_code", "status", "template",
	"wedding_details", "generated_content", "domain", "created_at",
}

type postgresStore struct {
	db  *sqlx.DB
	txm trm.Manager
	qb  sq.StatementBuilderType
}

func NewPostgresStore(db *sqlx.DB, txm trm.Manager) *postgresStore {
	return &postgresStore{
		db:  db,
		txm: txm,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *postgresStore) GetByID(ctx context.Context, id int) (entities.Order, error) {
	return s.getOne(ctx, sq.Eq{"id": id}, false)
}

func (s *postgresStore) GetByAccessCode(ctx context.Context, code string) (entities.Order, error) {
	return s.getOne(ctx, sq.Eq{"access_code": code}, false)
}

func (s *postgresStore) Create(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	status := draft.Status
	if status == "" {
		status = entities.StatusPending
	}

	details, err := marshalDetails(draft.WeddingDetails)
	if err != nil {
		return entities.Order{}, err
	}

	query, args := s.qb.Insert("orders").
		Columns("etsy_order_id", "access_code", "status", "template", "wedding_details").
		Values(draft.EtsyOrderID, draft.AccessCode, string(status), nullString(string(draft.Template)), details).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var row Order
	if err := s.getContext(ctx, &row, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.Order{}, entities.ErrOrderExists
		}
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return OrderToEntity(row)
}

// Update applies the patch under SELECT ... FOR UPDATE so concurrent updates
// to the same order serialize instead of interleaving at the field level.
func (s *postgresStore) Update(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error) {
	var result entities.Order

	err := s.txm.Do(ctx, func(ctx context.Context) error {
		current, err := s.getOne(ctx, sq.Eq{"id": id}, true)
		if err != nil {
			return err
		}

		merged := applyPatch(current, patch)

		details, err := marshalDetails(merged.WeddingDetails)
		if err != nil {
			return err
		}
		content, err := marshalContent(merged.GeneratedContent)
		if err != nil {
			return err
		}

		query, args := s.qb.Update("orders").
			Set("status", string(merged.Status)).
			Set("template", nullString(string(merged.Template))).
			Set("wedding_details", details).
			Set("generated_content", content).
			Where(sq.Eq{"id": id}).
			MustSql()

		if _, err := s.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		result = merged
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	return result, nil
}

func (s *postgresStore) getOne(ctx context.Context, where sq.Eq, forUpdate bool) (entities.Order, error) {
	q := s.qb.Select(orderColumns...).From("orders").Where(where)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var row Order
	err := s.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(row)
}

// applyPatch merges a patch into an order. Shared by both store
// implementations so their merge semantics cannot diverge.
func applyPatch(o entities.Order, p entities.OrderPatch) entities.Order {
	if p.Template != nil {
		o.Template = *p.Template
	}
	if p.WeddingDetails != nil {
		var base entities.WeddingDetails
		if o.WeddingDetails != nil {
			base = *o.WeddingDetails
		}
		merged := base.Merge(*p.WeddingDetails)
		o.WeddingDetails = &merged
	}
	if p.GeneratedContent != nil {
		content := *p.GeneratedContent
		o.GeneratedContent = &content
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	return o
}

func (s *postgresStore) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return s.db.ExecContext(ctx, query, args...)
}

func (s *postgresStore) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return s.db.GetContext(ctx, dest, query, args...)
}
