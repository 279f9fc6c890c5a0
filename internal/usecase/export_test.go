package usecase

// Aliases exposing unexported identifiers to the external test package.
var InvoiceNumber = invoiceNumber

const DefaultPageSize = defaultPageSize
