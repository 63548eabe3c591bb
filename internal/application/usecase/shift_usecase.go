package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/jhoicas/pos-api/pkg/objectid"
)

// ShiftUseCase ciclo de vida de turnos de caja: a lo sumo uno abierto por
// pareja (inquilino, operador), transición única open -> closed.
type ShiftUseCase struct {
	repo     repository.ShiftRepository
	counters repository.CounterRepository
	log      *logger.Logger
}

func NewShiftUseCase(repo repository.ShiftRepository, counters repository.CounterRepository, log *logger.Logger) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, counters: counters, log: log}
}

// Current devuelve el turno abierto del operador, nil si no hay.
func (uc *ShiftUseCase) Current(ctx context.Context, client, user string) (*dto.ShiftResponse, error) {
	s, err := uc.repo.OpenByUser(ctx, client, user)
	if err != nil {
		return nil, err
	}
	return dto.ToShiftResponse(s), nil
}

// OpenForClient devuelve el turno abierto más reciente del inquilino (sin
// distinguir operador), nil si no hay.
func (uc *ShiftUseCase) OpenForClient(ctx context.Context, client string) (*dto.ShiftResponse, error) {
	s, err := uc.repo.OpenByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return dto.ToShiftResponse(s), nil
}

func (uc *ShiftUseCase) History(ctx context.Context, client string, limit, offset int) ([]dto.ShiftResponse, int, error) {
	shifts, err := uc.repo.History(ctx, client, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.CountByClient(ctx, client)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToShiftResponses(shifts), total, nil
}

// Open abre un turno. Si el operador ya tiene uno abierto devuelve ese turno
// junto con ErrShiftAlreadyOpen para que el handler lo adjunte a la respuesta.
func (uc *ShiftUseCase) Open(ctx context.Context, client, user string, req dto.OpenShiftRequest) (*dto.ShiftResponse, error) {
	existing, err := uc.repo.OpenByUser(ctx, client, user)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return dto.ToShiftResponse(existing), domain.ErrShiftAlreadyOpen
	}

	number, err := uc.counters.Next(ctx, client, repository.CounterShifts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &entity.Shift{
		ID:        objectid.New(),
		Client:    client,
		User:      user,
		Store:     req.Store,
		Register:  req.Register,
		App:       AppID,
		Number:    number,
		Status:    entity.ShiftStatusOpen,
		OpenedAt:  now.Unix(),
		Created:   now.Unix(),
		Updated:   now.Unix(),
		CreatedMS: now.UnixMilli(),
	}
	if req.OpeningBalance != nil {
		s.OpeningBalance = *req.OpeningBalance
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		// Carrera contra otra apertura: el índice único ganó, se recupera el
		// turno que quedó abierto.
		if errors.Is(err, domain.ErrShiftAlreadyOpen) {
			if winner, lookupErr := uc.repo.OpenByUser(ctx, client, user); lookupErr == nil && winner != nil {
				return dto.ToShiftResponse(winner), domain.ErrShiftAlreadyOpen
			}
		}
		return nil, err
	}

	uc.log.Info().
		Str("client", client).
		Str("user", user).
		Int64("number", s.Number).
		Msg("Turno abierto")

	return dto.ToShiftResponse(s), nil
}

// Close cierra el turno abierto del operador. Sin turno abierto devuelve
// ErrNoOpenShift.
func (uc *ShiftUseCase) Close(ctx context.Context, client, user string, req dto.CloseShiftRequest) (*dto.ShiftResponse, error) {
	closed, err := uc.repo.CloseOpen(ctx, client, user, repository.ShiftClose{
		ClosingBalance: req.ClosingBalance,
		Notes:          req.Notes,
	}, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	if closed == nil {
		return nil, domain.ErrNoOpenShift
	}

	uc.log.Info().
		Str("client", client).
		Str("user", user).
		Int64("number", closed.Number).
		Msg("Turno cerrado")

	return dto.ToShiftResponse(closed), nil
}
