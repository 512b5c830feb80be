// Package domain contains the core business entities: extracted pages,
// chunks, retrieval filters, and result shapes. It has no dependencies on
// adapters or external services.
package domain
