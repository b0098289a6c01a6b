package movement

import (
	"context"
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// List projeção de leitura: lista movimentações com filtros opcionais.
func (uc *UseCase) List(ctx context.Context, in dto.ListMovementsRequest) ([]*entity.Movement, error) {
	in.DefaultPage()
	filter := repository.MovementFilter{
		LocationID: in.LocationID,
		Kind:       in.Kind,
		Status:     in.Status,
		TextQuery:  in.Query,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	if t, ok := parseDate(in.From); ok {
		filter.From = &t
	}
	if t, ok := parseDate(in.To); ok {
		end := t
		// Data sem hora marca o dia inteiro.
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &end
	}
	return uc.movRepo.List(filter)
}

// GetByID projeção de leitura: detalhe com linhas e eventos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ToResponse converte o agregado para o DTO de resposta.
func ToResponse(m *entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:           m.ID,
		Kind:         m.Kind,
		Status:       m.Status,
		LocationID:   m.LocationID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, line := range m.Lines {
		out.Lines = append(out.Lines, dto.MovementLineResponse{
			ID:            line.ID,
			ItemVariantID: line.ItemVariantID,
			Quantity:      line.Quantity,
		})
	}
	for _, ev := range m.Events {
		out.Events = append(out.Events, dto.MovementEventResponse{
			Status:    ev.Status,
			ActorID:   ev.ActorID,
			ActorName: ev.ActorName,
			CreatedAt: ev.CreatedAt,
		})
	}
	return out
}
