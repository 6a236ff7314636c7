package entities

// DefaultLeadTimeDays is the fallback lead time substituted whenever a
// parsed or supplied lead time is unusable: too large, negative, or
// otherwise degenerate.
const DefaultLeadTimeDays = 5
