package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
	"tapconnect/internal/orderform"
)

type mockSessionStore struct {
	GetFunc         func(id string) (*orderform.Form, bool)
	GetOrCreateFunc func(id string) (string, *orderform.Form, bool)
	created         int
}

func (m *mockSessionStore) Get(id string) (*orderform.Form, bool) {
	return m.GetFunc(id)
}

func (m *mockSessionStore) GetOrCreate(id string) (string, *orderform.Form, bool) {
	id, form, created := m.GetOrCreateFunc(id)
	if created {
		m.created++
	}
	return id, form, created
}

func (m *mockSessionStore) Blank() *orderform.Form {
	return newTestForm(okDeliver)
}

// singleFormStore always hands out the same form under "session-1".
func singleFormStore(form *orderform.Form) *mockSessionStore {
	return &mockSessionStore{
		GetFunc: func(id string) (*orderform.Form, bool) {
			if id != "session-1" {
				return nil, false
			}
			return form, true
		},
		GetOrCreateFunc: func(id string) (string, *orderform.Form, bool) {
			return "session-1", form, id != "session-1"
		},
	}
}

func newTestForm(deliver func(ctx context.Context, reference string, draft domain.OrderDraft) error) *orderform.Form {
	return orderform.New(catalog.Default(), orderform.SinkFunc(deliver))
}

func okDeliver(ctx context.Context, reference string, draft domain.OrderDraft) error { return nil }

func TestDraft_WithoutSessionReturnsDefaults(t *testing.T) {
	store := singleFormStore(newTestForm(okDeliver))
	uc := NewOrderFormUseCase(store, zap.NewNop())

	for i := 0; i < 50; i++ {
		id, snapshot := uc.Draft("")

		assert.Empty(t, id)
		assert.Equal(t, orderform.StateEditing, snapshot.State)
		assert.Equal(t, "Matte Black", snapshot.Draft.Color)
		assert.Equal(t, "Pro", snapshot.Draft.Plan)
	}

	_, _ = uc.Draft("stale-cookie")
	assert.Zero(t, store.created)
}

func TestDraft_ExistingSession(t *testing.T) {
	form := newTestForm(okDeliver)
	require.NoError(t, form.UpdateField(domain.FieldName, "Jane"))
	uc := NewOrderFormUseCase(singleFormStore(form), zap.NewNop())

	id, snapshot := uc.Draft("session-1")

	assert.Equal(t, "session-1", id)
	assert.Equal(t, "Jane", snapshot.Draft.Name)
}

func TestUpdateField_StartsSession(t *testing.T) {
	store := singleFormStore(newTestForm(okDeliver))
	uc := NewOrderFormUseCase(store, zap.NewNop())

	id, _, err := uc.UpdateField("", "name", "Jane")

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
	assert.Equal(t, 1, store.created)
}

func TestUpdateField_Success(t *testing.T) {
	uc := NewOrderFormUseCase(singleFormStore(newTestForm(okDeliver)), zap.NewNop())

	id, snapshot, err := uc.UpdateField("session-1", "business", "CrystalGlow")

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
	assert.Equal(t, "CrystalGlow", snapshot.Draft.Business)
}

func TestUpdateField_UnknownField(t *testing.T) {
	uc := NewOrderFormUseCase(singleFormStore(newTestForm(okDeliver)), zap.NewNop())

	_, _, err := uc.UpdateField("session-1", "fax", "123")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestSubmit_Incomplete(t *testing.T) {
	uc := NewOrderFormUseCase(singleFormStore(newTestForm(okDeliver)), zap.NewNop())

	_, snapshot, err := uc.Submit(context.Background(), "session-1")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "name is required", snapshot.ErrorFor(domain.FieldName))
	assert.Equal(t, "email is required", snapshot.ErrorFor(domain.FieldEmail))
}

func TestSubmit_Confirmed(t *testing.T) {
	var delivered []domain.OrderDraft
	form := newTestForm(func(ctx context.Context, reference string, draft domain.OrderDraft) error {
		delivered = append(delivered, draft)
		return nil
	})
	uc := NewOrderFormUseCase(singleFormStore(form), zap.NewNop())

	_, _, err := uc.UpdateField("session-1", "name", "Jane")
	require.NoError(t, err)
	_, _, err = uc.UpdateField("session-1", "email", "jane@example.com")
	require.NoError(t, err)

	_, snapshot, err := uc.Submit(context.Background(), "session-1")

	require.NoError(t, err)
	assert.True(t, snapshot.Confirmed())
	require.Len(t, delivered, 1)
	assert.Equal(t, "jane@example.com", delivered[0].Email)

	_, _, err = uc.Submit(context.Background(), "session-1")
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Len(t, delivered, 1)
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	form := newTestForm(func(ctx context.Context, reference string, draft domain.OrderDraft) error {
		return errors.New("store down")
	})
	uc := NewOrderFormUseCase(singleFormStore(form), zap.NewNop())
	_, _, _ = uc.UpdateField("session-1", "name", "Jane")
	_, _, _ = uc.UpdateField("session-1", "email", "jane@example.com")

	_, snapshot, err := uc.Submit(context.Background(), "session-1")

	_, ok := apperrors.IsUnavailableError(err)
	assert.True(t, ok)
	assert.Equal(t, orderform.StateDeliveryFailed, snapshot.State)
	assert.Equal(t, "Jane", snapshot.Draft.Name)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "confirmed", outcome(nil))
	assert.Equal(t, "invalid", outcome(apperrors.NewValidationError("x")))
	assert.Equal(t, "rejected", outcome(apperrors.NewConflictError("x")))
	assert.Equal(t, "failed", outcome(apperrors.NewUnavailableError("x", errors.New("y"))))
}
