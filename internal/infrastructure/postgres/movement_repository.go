package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (pool ou tx). O agregado é persistido em três tabelas: movements,
// movement_lines e movement_events.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = "id, kind, status, location_id, employee_id, employee_name, created_at, updated_at"

// Create persiste a movimentação, suas linhas e os eventos já presentes no
// agregado. Deve ser chamado com um Querier atado a uma transação.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	ctx := context.Background()
	query := `
		INSERT INTO movements (id, kind, status, location_id, employee_id, employee_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Kind, movement.Status, movement.LocationID,
		movement.EmployeeID, movement.EmployeeName, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	for i := range movement.Lines {
		line := &movement.Lines[i]
		_, err := r.q.Exec(ctx, `
			INSERT INTO movement_lines (id, movement_id, item_variant_id, quantity, position)
			VALUES ($1, $2, $3, $4, $5)`,
			line.ID, line.MovementID, line.ItemVariantID, line.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert movement line: %w", err)
		}
	}
	for i := range movement.Events {
		if err := r.AppendEvent(&movement.Events[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID carrega a movimentação com linhas e eventos; nil se ausente.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate idem, bloqueando a linha da movimentação (FOR UPDATE).
// As linhas e eventos não precisam de bloqueio: linhas são imutáveis e
// eventos são append-only.
func (r *MovementRepo) GetByIDForUpdate(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *MovementRepo) getOne(query, id string) (*entity.Movement, error) {
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Kind, &m.Status, &m.LocationID,
		&m.EmployeeID, &m.EmployeeName, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if err := r.loadLines(&m); err != nil {
		return nil, err
	}
	if err := r.loadEvents(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepo) loadLines(m *entity.Movement) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, movement_id, item_variant_id, quantity
		FROM movement_lines WHERE movement_id = $1 ORDER BY position`, m.ID)
	if err != nil {
		return fmt.Errorf("load movement lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.MovementLine
		if err := rows.Scan(&line.ID, &line.MovementID, &line.ItemVariantID, &line.Quantity); err != nil {
			return fmt.Errorf("scan movement line: %w", err)
		}
		m.Lines = append(m.Lines, line)
	}
	return rows.Err()
}

func (r *MovementRepo) loadEvents(m *entity.Movement) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, movement_id, status, actor_id, actor_name, created_at
		FROM movement_events WHERE movement_id = $1 ORDER BY created_at, id`, m.ID)
	if err != nil {
		return fmt.Errorf("load movement events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ev entity.MovementEvent
		if err := rows.Scan(&ev.ID, &ev.MovementID, &ev.Status, &ev.ActorID, &ev.ActorName, &ev.CreatedAt); err != nil {
			return fmt.Errorf("scan movement event: %w", err)
		}
		m.Events = append(m.Events, ev)
	}
	return rows.Err()
}

// UpdateStatus grava status e updated_at da movimentação.
func (r *MovementRepo) UpdateStatus(movement *entity.Movement) error {
	query := `UPDATE movements SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, movement.ID, movement.Status, movement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	return nil
}

// AppendEvent acrescenta um evento à trilha de auditoria.
func (r *MovementRepo) AppendEvent(event *entity.MovementEvent) error {
	query := `
		INSERT INTO movement_events (id, movement_id, status, actor_id, actor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.MovementID, event.Status, event.ActorID, event.ActorName, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement event: %w", err)
	}
	return nil
}

// List lista movimentações (sem linhas/eventos) com filtros opcionais,
// da mais recente para a mais antiga.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.TextQuery != "" {
		query += fmt.Sprintf(" AND employee_name ILIKE $%d", pos)
		args = append(args, "%"+filter.TextQuery+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Kind, &m.Status, &m.LocationID,
			&m.EmployeeID, &m.EmployeeName, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
