// Package stockemu provides the core types and operations of a stock
// portfolio simulator. It is designed to be deterministic and fully
// testable: every operation that needs market prices takes them from an
// injected quote source, so the same history replays identically.
//
// The core functionalities include:
//   - Portfolio Management: Recording stock purchases (by amount at the
//     market price, or imported with an explicit cost) into titled,
//     append-only portfolios.
//   - Valuation: Computing a portfolio's composition, cost basis, and
//     market value as of any past moment.
//   - Strategies: Defining weighted investment strategies and applying
//     them once or replaying them over time with dollar cost averaging.
//   - Trading Calendar: Validating purchase moments against trading
//     hours, weekends, and the wall clock.
//   - Data Persistence: Encoding and decoding portfolios and strategies
//     to and from stable, human-readable JSON files.
//
// This package serves as the foundational logic for the `semu`
// command-line tool.
package stockemu
