// Package models holds the domain types shared by the stores and handlers.
package models

// MaxListResults caps every collection read. There is no cursor: records
// past this count are not reachable through the list endpoints.
const MaxListResults = 1000
