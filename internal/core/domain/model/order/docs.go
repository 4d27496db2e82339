// Package order contains the Order aggregate: a customer purchase order
// line (PO, product, optional size, ordered quantity, deadline) together
// with its running totals of pieces assigned to workers and delivered to
// the customer.
//
// The totals only move forward. Assigned may exceed the ordered quantity;
// over-assignment is tolerated as production slack. Delivered is
// incremented only by the delivery workflow, which bounds it per
// assignment, so across an order it never exceeds the confirmed returns.
package order
