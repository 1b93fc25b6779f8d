package toolchain

import (
	"fmt"
	"runtime"
	"strings"
)

type archiveFormat string

const (
	archiveFormatZip   archiveFormat = "zip"
	archiveFormatTarGz archiveFormat = "tar.gz"
)

// releaseSpec describes one downloadable artifact for a resolved version.
type releaseSpec struct {
	Version string
	URL     string
	Archive archiveFormat
}

// downloadSpec builds the platform-specific artifact location for an exact
// version. Every upstream ships one archive whose internal layout has a
// single leading directory, stripped during extraction.
func (ix *Index) downloadSpec(tool, version string) (releaseSpec, error) {
	switch tool {
	case "go":
		return ix.goDownload(version), nil
	case "java":
		return ix.javaDownload(version), nil
	case "maven":
		return ix.mavenDownload(version), nil
	case "gradle":
		return ix.gradleDownload(version), nil
	default:
		return releaseSpec{}, fmt.Errorf("%s: %w", tool, ErrUnknownTool)
	}
}

func (ix *Index) goDownload(version string) releaseSpec {
	format := archiveFormatTarGz
	ext := "tar.gz"
	if runtime.GOOS == "windows" {
		format = archiveFormatZip
		ext = "zip"
	}
	url := fmt.Sprintf("%s/go%s.%s-%s.%s", ix.goBase(), version, runtime.GOOS, runtime.GOARCH, ext)
	return releaseSpec{Version: version, URL: url, Archive: format}
}

func (ix *Index) javaDownload(version string) releaseSpec {
	format := archiveFormatTarGz
	goos := runtime.GOOS
	if goos == "darwin" {
		goos = "mac"
	}
	if goos == "windows" {
		format = archiveFormatZip
	}
	url := fmt.Sprintf("%s/v3/binary/version/jdk-%s/%s/%s/jdk/hotspot/normal/eclipse",
		ix.javaBase(), version, goos, javaArch())
	return releaseSpec{Version: version, URL: url, Archive: format}
}

func javaArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x64"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}

func (ix *Index) mavenDownload(version string) releaseSpec {
	base := "https://archive.apache.org/dist/maven"
	if ix.mirrors.Maven != "" && !strings.Contains(ix.mirrors.Maven, "github") {
		base = strings.TrimSuffix(ix.mirrors.Maven, "/")
	}
	major, _, _ := strings.Cut(version, ".")
	url := fmt.Sprintf("%s/maven-%s/%s/binaries/apache-maven-%s-bin.tar.gz", base, major, version, version)
	return releaseSpec{Version: version, URL: url, Archive: archiveFormatTarGz}
}

func (ix *Index) gradleDownload(version string) releaseSpec {
	url := fmt.Sprintf("%s/distributions/gradle-%s-bin.zip", ix.gradleBase(), version)
	return releaseSpec{Version: version, URL: url, Archive: archiveFormatZip}
}
