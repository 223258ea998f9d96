package observability_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tabitha/pkg/form"
	"github.com/aretw0/tabitha/pkg/observability"
	"github.com/aretw0/tabitha/pkg/registry"
	"github.com/aretw0/tabitha/pkg/validation"
)

var _ registry.Observer = (*observability.Recorder)(nil)

func TestRecorder_CountsOutcomes(t *testing.T) {
	rec := observability.NewRecorder()

	rec.ObserveValidation("user", form.Result{Success: true}, time.Millisecond)
	rec.ObserveValidation("user", form.Result{Errors: []validation.FieldError{
		{Field: "age", Message: "bad"},
		{Field: "email", Message: "bad"},
	}}, time.Millisecond)
	rec.ObserveValidation("user", form.Result{Errors: []validation.FieldError{
		{Message: "expected object, got string"},
	}}, time.Millisecond)

	expected := `
# HELP tabitha_validations_total Total number of payload validations
# TYPE tabitha_validations_total counter
tabitha_validations_total{outcome="invalid",schema="user"} 2
tabitha_validations_total{outcome="valid",schema="user"} 1
`
	require.NoError(t, testutil.GatherAndCompare(rec.Gatherer(), strings.NewReader(expected), "tabitha_validations_total"))

	expected = `
# HELP tabitha_validation_field_errors_total Total number of field errors reported
# TYPE tabitha_validation_field_errors_total counter
tabitha_validation_field_errors_total{field="(root)",schema="user"} 1
tabitha_validation_field_errors_total{field="age",schema="user"} 1
tabitha_validation_field_errors_total{field="email",schema="user"} 1
`
	require.NoError(t, testutil.GatherAndCompare(rec.Gatherer(), strings.NewReader(expected), "tabitha_validation_field_errors_total"))

	count, err := testutil.GatherAndCount(rec.Gatherer(), "tabitha_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_CollapsesIndexes(t *testing.T) {
	rec := observability.NewRecorder()
	for _, field := range []string{"items.0.priority", "items.17.priority", "items.203.priority"} {
		rec.ObserveValidation("wishlist.with_items", form.Result{Errors: []validation.FieldError{
			{Field: field, Message: "bad"},
		}}, time.Millisecond)
	}

	expected := `
# HELP tabitha_validation_field_errors_total Total number of field errors reported
# TYPE tabitha_validation_field_errors_total counter
tabitha_validation_field_errors_total{field="items.*.priority",schema="wishlist.with_items"} 3
`
	require.NoError(t, testutil.GatherAndCompare(rec.Gatherer(), strings.NewReader(expected), "tabitha_validation_field_errors_total"))
}

func TestRecorder_ObservesRegistry(t *testing.T) {
	rec := observability.NewRecorder()
	reg := registry.Default()
	reg.Observe(rec)

	_, err := reg.Validate(registry.WishlistItemUpdate, map[string]any{"priority": 3})
	require.NoError(t, err)
	_, err = reg.Validate(registry.WishlistItemUpdate, map[string]any{"priority": 0})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(rec.Gatherer(), "tabitha_validations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := observability.NewRecorder()
	rec.ObserveValidation("product", form.Result{Success: true}, time.Microsecond)

	path := filepath.Join(t.TempDir(), "tabitha.prom")
	require.NoError(t, rec.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `tabitha_validations_total{outcome="valid",schema="product"} 1`)
}
