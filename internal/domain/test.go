package domain

// CaseStatus classifies a candidate case directory during discovery
type CaseStatus string

const (
	StatusMissingInput  CaseStatus = "missing input.json"
	StatusMissingOutput CaseStatus = "missing output.json"
	StatusOK            CaseStatus = "ok"
)

// TestCase represents a runnable case directory with both fixtures present
type TestCase struct {
	Dir        string // Path relative to the test root, slash separated (identity)
	InputPath  string // Full path to input.json
	OutputPath string // Full path to output.json (the golden fixture)
	RealWorld  bool   // Executed inside a container instead of with the local tool
}

// Classification is the discovery verdict for one candidate directory
type Classification struct {
	Dir       string
	RealWorld bool
	Status    CaseStatus
}
