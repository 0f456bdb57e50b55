// Package queries holds the read side of dispatch. Handlers run plain SQL
// through sqlx against committed rows, take no locks and never write.
// Statements use ? placeholders and are rebound for the connected driver.
package queries
