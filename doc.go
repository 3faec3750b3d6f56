package mockskema

// Package mockskema provides:
//
// - Schema-driven mock data: Generate synthesizes a JSON value from a JSON Schema subset
// - Reproducible output: a seeded LCG makes (schema, options) fully determine the value
// - Advisory checks via ValidateForMock (Issues with JSON Pointer, code, localized message)
// - Schema statistics via Analyze, batch generation via GenerateMany
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place schema loaders under source/, message catalogs under i18n/, and the CLI under cmd/mockskema.
// - The PRNG cursor is passed explicitly through generation; nothing global is mutated.
//
// Typical usage:
//
//  schema, err := source.Load("user.json", data)
//  if r := mockskema.ValidateForMock(schema); !r.Valid {
//      return r.Err()
//  }
//  v, err := mockskema.Generate(schema, mockskema.WithSeed(42))
//  b, err := mockskema.GenerateJSON(schema, mockskema.WithSeed(42), mockskema.WithArrayCount(5))
//
// The PRNG is state = (state*9301 + 49297) mod 233280, drawn as state/233280.
// Object properties are visited in sorted key order.
