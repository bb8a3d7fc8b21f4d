// Package insights holds the aggregations behind the home page, the cashback
// breakdown and the category spending report. Every function reads the rows it
// is given and never modifies them.
package insights
