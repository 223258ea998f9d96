/*
Package domain defines the canonical wishlist entities and their wire shapes.

Each entity comes in explicit variants:

  - the full record (User, Product, Wishlist, WishlistItem) as stored and
    returned by the backing service, including server-assigned fields;
  - a Create variant (NewUser, NewProduct, NewWishlist, NewWishlistItem)
    without the server-assigned fields;
  - an Update variant (UserPatch, WishlistPatch, WishlistItemPatch) where every
    field is optional and nil means "leave unchanged".

The typed records validate through their `validate` struct tags plus the
cross-field business rules (Validate methods). The same constraints are
exposed as runtime schemas (UserSchema, NewUserSchema, ...) for payloads that
arrive untyped, e.g. decoded JSON at a system boundary. Both are generated
from a single field table per entity so they cannot drift apart.

The package owns no state: entities are immutable values validated in transit.
*/
package domain
