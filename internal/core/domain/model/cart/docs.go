// Package cart implements the session-scoped shopping cart.
//
// A Cart is an ordered list of Items keyed by product. Items snapshot the
// product's name, price, photo, category and commerce at add-time; the
// catalog is deliberately not re-read between add and checkout, so a price
// change in the catalog does not affect carts already holding the product.
//
// The cart has no identity of its own: it is stored against the session id
// and destroyed when checkout converts it into orders.
package cart
