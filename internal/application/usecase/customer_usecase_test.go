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

func newCustomerFixture(seed ...*entity.Customer) *usecase.CustomerUseCase {
	repo := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range seed {
		repo.customers[c.ID] = c
	}
	return usecase.NewCustomerUseCase(repo)
}

func TestCustomerCreate_RequiereNombre(t *testing.T) {
	uc := newCustomerFixture()

	_, err := uc.Create(context.Background(), testClient, testUser, dto.CreateCustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un descuento que no viene se conserva; un cero explícito sí aplica.
func TestCustomerUpdate_DescuentoParcial(t *testing.T) {
	uc := newCustomerFixture(&entity.Customer{
		ID:       "c1",
		Client:   testClient,
		Name:     "Іван",
		Discount: decimal.NewFromInt(10),
	})

	phone := "+380501234567"
	updated, err := uc.Update(context.Background(), testClient, "c1", dto.UpdateCustomerRequest{
		Phones: []string{phone},
	})
	require.NoError(t, err)
	assert.True(t, updated.Discount.Equal(decimal.NewFromInt(10)), "descuento omitido se conserva")
	assert.Equal(t, []string{phone}, updated.Phones)

	zero := decimal.Zero
	updated, err = uc.Update(context.Background(), testClient, "c1", dto.UpdateCustomerRequest{
		Discount: &zero,
	})
	require.NoError(t, err)
	assert.True(t, updated.Discount.IsZero(), "cero explícito aplica")
	assert.Equal(t, "Іван", updated.Name)
}

func TestCustomerUpdate_OtroInquilinoNoVe(t *testing.T) {
	uc := newCustomerFixture(&entity.Customer{ID: "c1", Client: "otro", Name: "Іван"})

	nombre := "nuevo"
	_, err := uc.Update(context.Background(), testClient, "c1", dto.UpdateCustomerRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
