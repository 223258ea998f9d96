/*
Package tabitha is the shared schema and validation layer of Tabitha Most
Wanted, a wishlist application for children.

Every client and the backing service agree on the same entities (users,
products, wishlists, wishlist items and user preferences), on the same
field rules, and on the same user-facing error text. The packages under pkg/
hold that shared contract:

  - config: versioned, read-only constants (age bounds, categories,
    retailers, messages, error codes).
  - schema: the structural schema engine with dotted-path errors.
  - validation: field predicates, password and profile checks, struct tags.
  - domain: typed records with explicit Create and Update variants, and
    their runtime schemas built from one field table per entity.
  - form: schema-backed form validators returning field errors.
  - auth: sign-up and sign-in checks and auth provider error messages.
  - api: response envelopes, pagination and the OpenAPI document.
  - registry: named lookup of every validator.
  - observability: Prometheus metrics for validation runs.

# Usage

Validate an untyped payload at a system boundary:

	v := form.NewValidator(domain.NewUserSchema(), domain.CheckParentEmail)
	res := v.Validate(payload)
	if !res.Success {
		for _, e := range res.Errors {
			fmt.Printf("%s: %s\n", e.Field, e.Message)
		}
	}

Or check a typed record:

	errs := domain.NewWishlistItem{WishlistID: wid, ProductID: pid}.WithDefaults().Validate()

The tabitha command (cmd/tabitha) exposes the same checks on the command line.
*/
package tabitha
