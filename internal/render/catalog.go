package render

// derivedFields maps each derived metric title to the raw sacct fields its
// computation needs. Derived titles are valid display columns even though
// sacct knows nothing about them; the resolver swaps them for their
// prerequisites when building the query column set.
var derivedFields = map[string][]string{
	"CPUEff":  {"TotalCPU", "AllocCPUS", "Elapsed"},
	"MemEff":  {"REQMEM", "NNodes", "AllocCPUS", "MaxRSS"},
	"TimeEff": {"Elapsed", "Timelimit"},
}

// requiredColumns are always fetched so that rows can be identified and
// grouped downstream, whether or not the user asked to display them.
var requiredColumns = []string{"JobID", "JobIDRaw", "State"}

// alwaysIncluded columns are prepended to the display list when missing,
// keeping their declared order at the front. Tokens may carry formatting.
var alwaysIncluded = []string{"JobID%>", "State"}
