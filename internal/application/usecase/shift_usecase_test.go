package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func newShiftFixture() (*usecase.ShiftUseCase, *fakeShiftRepo) {
	repo := &fakeShiftRepo{}
	return usecase.NewShiftUseCase(repo, &fakeCounterRepo{}, testLogger()), repo
}

func TestShiftOpen_AbreConNumeroSecuencial(t *testing.T) {
	uc, _ := newShiftFixture()

	balance := decimal.NewFromInt(100)
	s, err := uc.Open(context.Background(), testClient, testUser, dto.OpenShiftRequest{
		Store:          testStore,
		Register:       "r1",
		OpeningBalance: &balance,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), s.Number)
	assert.Equal(t, entity.ShiftStatusOpen, s.Status)
	assert.Equal(t, testStore, s.Store)
	assert.True(t, s.OpeningBalance.Equal(balance))
	assert.NotZero(t, s.OpenedAt)
}

// La segunda apertura del mismo operador no crea nada: devuelve el turno ya
// abierto junto con el error, para que el handler lo adjunte a la respuesta.
func TestShiftOpen_DobleAperturaDevuelveTurnoExistente(t *testing.T) {
	uc, repo := newShiftFixture()

	first, err := uc.Open(context.Background(), testClient, testUser, dto.OpenShiftRequest{})
	require.NoError(t, err)

	second, err := uc.Open(context.Background(), testClient, testUser, dto.OpenShiftRequest{})
	require.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.shifts, 1, "no debe quedar un segundo turno abierto")
}

// Operadores distintos del mismo inquilino conviven con turnos abiertos.
func TestShiftOpen_OperadoresIndependientes(t *testing.T) {
	uc, repo := newShiftFixture()

	_, err := uc.Open(context.Background(), testClient, "user-a", dto.OpenShiftRequest{})
	require.NoError(t, err)
	_, err = uc.Open(context.Background(), testClient, "user-b", dto.OpenShiftRequest{})
	require.NoError(t, err)

	assert.Len(t, repo.shifts, 2)
}

func TestShiftClose_CierraYGuardaBalance(t *testing.T) {
	uc, _ := newShiftFixture()

	_, err := uc.Open(context.Background(), testClient, testUser, dto.OpenShiftRequest{})
	require.NoError(t, err)

	balance := decimal.NewFromInt(250)
	notes := "cierre sin novedades"
	closed, err := uc.Close(context.Background(), testClient, testUser, dto.CloseShiftRequest{
		ClosingBalance: &balance,
		Notes:          &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ShiftStatusClosed, closed.Status)
	assert.True(t, closed.ClosingBalance.Equal(balance))
	assert.Equal(t, notes, closed.Notes)
	assert.NotZero(t, closed.ClosedAt)

	// Tras el cierre ya no hay turno corriente.
	current, err := uc.Current(context.Background(), testClient, testUser)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestShiftClose_SinTurnoAbierto(t *testing.T) {
	uc, _ := newShiftFixture()

	_, err := uc.Close(context.Background(), testClient, testUser, dto.CloseShiftRequest{})
	assert.ErrorIs(t, err, domain.ErrNoOpenShift)
}

// OpenForClient mira el inquilino completo, sin distinguir operador.
func TestShiftOpenForClient(t *testing.T) {
	uc, _ := newShiftFixture()

	none, err := uc.OpenForClient(context.Background(), testClient)
	require.NoError(t, err)
	assert.Nil(t, none)

	opened, err := uc.Open(context.Background(), testClient, "user-a", dto.OpenShiftRequest{})
	require.NoError(t, err)

	found, err := uc.OpenForClient(context.Background(), testClient)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, opened.ID, found.ID)
}
