package restaurant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaValidatorAcceptsValidForms(t *testing.T) {
	v := NewJSONSchemaValidator()
	cases := map[string]any{
		FormMenuItem:     MenuItemInput{Name: "Fries", Price: 2.5, Category: "Side"},
		FormStockReceipt: StockReceipt{ItemID: "I-001", Quantity: 12},
		FormPromotion:    PromotionInput{Code: "SAVE5", Type: DiscountFlat, Value: 5, StartDate: "2024-12-01", EndDate: "2024-12-31"},
		FormStaff:        StaffInput{Name: "Dana", Email: "dana@corp.com", RoleID: "cashier"},
		FormRole:         RoleInput{Name: "Chef", Access: []Permission{PermConfigureMenu}},
		FormSettings:     defaultSettings(),
	}
	for form, payload := range cases {
		if err := v.Validate(form, payload); err != nil {
			t.Fatalf("%s: unexpected error %v", form, err)
		}
	}
}

func TestJSONSchemaValidatorReportsProblems(t *testing.T) {
	v := NewJSONSchemaValidator()

	err := v.Validate(FormMenuItem, MenuItemInput{Name: "Soup", Price: -1, Category: "Starter"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FormMenuItem, verr.Form)
	require.Len(t, verr.Problems, 2)
	assert.Contains(t, verr.Problems[0], "category")
	assert.Contains(t, verr.Problems[1], "price")
	assert.Contains(t, err.Error(), "menu_item form is invalid")
}

func TestJSONSchemaValidatorRejectsMalformedFields(t *testing.T) {
	v := NewJSONSchemaValidator()

	assert.ErrorIs(t, v.Validate(FormStaff, StaffInput{Name: "Dana", Email: "not-an-email", RoleID: "cashier"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(FormPromotion, PromotionInput{Code: "TWO WORDS", Type: DiscountFlat, Value: 1, StartDate: "2024-12-01", EndDate: "2024-12-02"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(FormPromotion, PromotionInput{Code: "DATES", Type: DiscountFlat, Value: 1, StartDate: "12/01/2024", EndDate: "2024-12-02"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(FormRole, RoleInput{Name: "Ghost", Access: []Permission{"Fly"}}), ErrValidation)
}

func TestJSONSchemaValidatorSkipsFormsWithoutSchema(t *testing.T) {
	v := NewJSONSchemaValidator()
	assert.NoError(t, v.Validate("unknown_form", map[string]any{"anything": true}))
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := invalid(FormRole, "Role name cannot be empty.")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "restaurant: role form is invalid: Role name cannot be empty.", err.Error())

	bare := &ValidationError{Form: FormStaff}
	assert.Equal(t, "restaurant: staff form is invalid", bare.Error())
}

func TestServiceUsesInjectedValidator(t *testing.T) {
	svc, _ := newTestService(t, func(o *Options) { o.Validator = noopFormValidator{} })
	_, err := svc.SaveMenuItem(t.Context(), MenuItemInput{Name: "Mystery", Price: -3, Category: "Starter"})
	require.NoError(t, err)
}
