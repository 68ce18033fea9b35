// Package domain contains the types shared by every content entity.
// Entity-specific types live in sub-packages (domain/service, domain/news, ...).
// This root package holds sentinel errors, validation and load error types, the
// shape predicates used by every entity validator, the generic FilterValid
// stage, and the closed IconKind enumeration.
package domain
