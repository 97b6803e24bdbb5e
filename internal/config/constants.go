package config

const (
	DefaultBuildCommand   = "make"
	DefaultBuildTarget    = "jar"
	DefaultRuntimeCommand = "java"
	DefaultAssertionsFlag = "-ea"
	DefaultClasspathFlag  = "-cp"
	DefaultArchive        = "sst.jar"

	SuiteAll       = "shared.test.All"
	SuiteDemo      = "shared.test.Demo"
	SuiteAllNative = "shared.test.AllNative"
	SuiteAllX      = "sharedx.test.AllX"

	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"

	DefaultConfigFile = "sst-launcher.yaml"
)

// DefaultSuites returns the test-suite entry points in run order
func DefaultSuites() []string {
	return []string{SuiteAll, SuiteDemo, SuiteAllNative, SuiteAllX}
}
