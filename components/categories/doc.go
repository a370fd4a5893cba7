// Package categories provides the income and expense category tables used
// by the overpayment-waiver interview, search helpers, and a small net/http
// handler that returns JSON options for form inputs.
//
// The default handler responds to GET and HEAD requests and supports kind,
// query, and limit parameters. The backing tables are loaded from the
// embedded list under data/categories.yaml; unlike free-form reference data
// the tables keep their curated order, which is the order the interview
// presents choices in.
package categories
