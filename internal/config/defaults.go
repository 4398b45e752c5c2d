package config

const (
	// DefaultRoot is the default test root
	DefaultRoot = "."
	// DefaultToolName is the local analysis tool expected inside the test root
	DefaultToolName = "tool"
	// DefaultRealWorldDir groups the containerized real-world cases
	DefaultRealWorldDir = "docker"
	// DefaultInputFile is the opaque analysis-input fixture
	DefaultInputFile = "input.json"
	// DefaultOutputFile is the golden output fixture the tool regenerates
	DefaultOutputFile = "output.json"
	// DefaultSourceRoot is the path literal embedded in fixtures at capture time
	DefaultSourceRoot = "/home/thebesttv/vul/llvm-project/graph-generation"
	// DefaultStateDir holds harness state inside the test root
	DefaultStateDir = ".ggtest"
	// DefaultResultsFile is the last-run record file name
	DefaultResultsFile = "last-run.json"
	// DefaultEnvFile is loaded from the test root when present
	DefaultEnvFile = ".env"
)

// Container defaults for real-world cases
const (
	DefaultContainerRuntime = "docker"
	DefaultImageNamespace   = "thebesttv/arch"
	DefaultContainerRoot    = "/home/thebesttv/vul/llvm-project"
	DefaultContainerTool    = "build-release/bin/thebesttv"
	DefaultPrivilegeCommand = "sudo"
)

// DefaultContainerToolFlags are passed to the analysis tool inside the container
var DefaultContainerToolFlags = []string{
	"--no-good-source",
	"--no-nodes",
}

// Environment variables that override the defaults above
const (
	EnvSourceRoot       = "GGTEST_SOURCE_ROOT"
	EnvImageNamespace   = "GGTEST_IMAGE_NAMESPACE"
	EnvContainerRuntime = "GGTEST_CONTAINER_RUNTIME"
	EnvContainerRoot    = "GGTEST_CONTAINER_ROOT"
	EnvContainerTool    = "GGTEST_CONTAINER_TOOL"
)
