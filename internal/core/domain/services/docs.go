// Package services provides domain services that span several aggregates of
// the production ledger and do not naturally belong to any one of them.
//
// The package includes:
//   - DeliveryPlanner: validates a bulk delivery against assignment
//     availability and buckets the items into one shipment per PO
//   - PaymentPreviewer: folds a worker's confirmed unpaid returns into the
//     per-category breakdown shown before a payout is saved
//
// Services are pure: they read and mutate in-memory aggregates and leave
// persistence to the application layer.
package services
