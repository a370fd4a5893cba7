// Package addendum decides, per form field, whether a value fits inside a
// fixed-width PDF/DOCX input or must spill into a supplementary addendum
// section. Each Field pairs a dotted variable name with an overflow trigger
// (a character/element budget, or "always overflow") and derives the safe
// portion that stays on the main page plus the overflow remainder, with
// optional multi-line packing for inputs that render more than one row.
// Collection keeps an insertion-ordered registry of fields and answers
// form-level questions such as "does anything overflow at all".
//
// Values are resolved through an injected binding.Resolver on every access;
// nothing is cached and resolution never prompts for input. An unbound name
// is simply an empty string.
package addendum
