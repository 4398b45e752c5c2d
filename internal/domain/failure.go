package domain

// ExecutionResult holds the golden output captured before the tool ran
// and the fresh output it regenerated.
type ExecutionResult struct {
	Case   TestCase
	Golden string
	Fresh  string
}

// Mismatch is produced when golden and fresh output differ
type Mismatch struct {
	Dir  string
	Diff string // unified diff, golden as "from", fresh as "to"
}
