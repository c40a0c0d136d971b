// Package order provides domain entities and business logic for order
// management in the farm-produce marketplace. It implements the Order
// aggregate root together with its line items.
//
// The package includes:
//   - Order: The aggregate root holding identity, farmer/admin references, status, and totals
//   - Item: A line entry capturing a product, its quantity, and a price snapshot
//   - Status: The order status vocabulary
//
// Key business rules:
//   - Orders must reference a valid farmer and carry a valid status
//   - An item's price is fixed at creation time as product price times quantity
//     and is never recomputed from the product catalog afterwards
//   - Updates merge a partial patch over the existing order: supplied fields
//     overwrite, omitted fields are preserved
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
