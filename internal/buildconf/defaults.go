package buildconf

// Registry locations. google() and jcenter() resolve to these in Gradle.
const (
	GoogleURL  = "https://dl.google.com/dl/android/maven2/"
	JCenterURL = "https://jcenter.bintray.com/"
	// CustomRepoURL hosts the ad SDK artifacts the plugin links against.
	CustomRepoURL = "https://aa-sdk.s3-eu-west-1.amazonaws.com/android_repo"
)

// Repository names used in both sets.
const (
	GoogleRepoName  = "google"
	JCenterRepoName = "jcenter"
	CustomRepoName  = "aa-sdk"
	NativeRepoName  = "corona-native"
)

// DefaultBuildDir is the build output directory relative to the project root.
const DefaultBuildDir = "build"

// Paths under the native SDK root that are exposed as flat directories.
const (
	nativeGradleLibDir = "Corona/android/lib/gradle"
	nativeCoronaLibDir = "Corona/android/lib/Corona/libs"
)

func googleRepo() Repository {
	return Repository{Name: GoogleRepoName, Kind: KindGoogle, URL: GoogleURL}
}

func jcenterRepo() Repository {
	return Repository{Name: JCenterRepoName, Kind: KindJCenter, URL: JCenterURL}
}

// BuildscriptRepositories returns the repositories used to resolve the
// buildscript classpath.
func BuildscriptRepositories() RepositorySet {
	return RepositorySet{googleRepo(), jcenterRepo()}
}

// StandardRepositories returns the fixed leading entries of the project
// repository set: the two public registries followed by the custom URL.
func StandardRepositories() RepositorySet {
	return RepositorySet{
		googleRepo(),
		jcenterRepo(),
		{Name: CustomRepoName, Kind: KindMaven, URL: CustomRepoURL},
	}
}

// DefaultClasspath returns the pinned buildscript classpath.
func DefaultClasspath() []ClasspathEntry {
	return []ClasspathEntry{
		{Group: "org.jetbrains.kotlin", Artifact: "kotlin-gradle-plugin", Version: "1.3.70", Kotlin: "gradle-plugin"},
		{Group: "com.android.tools.build", Artifact: "gradle", Version: "4.2.1"},
		{Group: "com.beust", Artifact: "klaxon", Version: "5.0.1"},
	}
}
