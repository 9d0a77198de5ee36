// Package catalogue provides the static symbolic tables a reading is mapped
// onto: the meaning of each reduced number and its Major Arcana archetype, in
// every supported language. The tables are embedded YAML loaded once at start-up.
//
// 33 and 44 are produced by the reduction engine but have no entry yet;
// lookups for them report absence rather than inventing text.
package catalogue
