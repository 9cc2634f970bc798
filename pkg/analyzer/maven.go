package analyzer

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"jvcheck/pkg/logger"
)

// MavenTool reads pom.xml manifests.
type MavenTool struct {
	projectDir string
	pomFile    string
}

// NewMavenTool creates a Maven adapter rooted at projectDir.
func NewMavenTool(projectDir string) *MavenTool {
	return &MavenTool{
		projectDir: projectDir,
		pomFile:    filepath.Join(projectDir, "pom.xml"),
	}
}

// pomXML mirrors the parts of a pom.xml this tool cares about.
// encoding/xml matches on local names, so the Maven namespace needs no
// special handling.
type pomXML struct {
	XMLName      xml.Name        `xml:"project"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Parent       pomParent       `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Build        pomBuild        `xml:"build"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomBuild struct {
	Plugins []pomPlugin `xml:"plugins>plugin"`
}

type pomPlugin struct {
	ArtifactID    string `xml:"artifactId"`
	Configuration struct {
		Source string `xml:"source"`
	} `xml:"configuration"`
}

// pomProperties collects the free-form <properties> section into a map,
// since property names (maven.compiler.source, java.version, arbitrary
// *.version keys) are element names rather than values.
type pomProperties struct {
	Entries map[string]string
}

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Entries = make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			p.Entries[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// Name returns "Maven".
func (t *MavenTool) Name() string { return "Maven" }

// IsApplicable reports whether a pom.xml exists in the project directory.
func (t *MavenTool) IsApplicable() bool {
	_, err := os.Stat(t.pomFile)
	return err == nil
}

// CurrentJavaVersion extracts the declared Java version from the pom.xml.
// Checked in order: maven.compiler.source property, java.version property,
// then the maven-compiler-plugin <source> configuration.
func (t *MavenTool) CurrentJavaVersion() string {
	pom, ok := t.parsePom()
	if !ok {
		return "unknown"
	}

	if v := pom.Properties.Entries["maven.compiler.source"]; v != "" {
		return v
	}
	if v := pom.Properties.Entries["java.version"]; v != "" {
		return v
	}
	for _, plugin := range pom.Build.Plugins {
		if plugin.ArtifactID == "maven-compiler-plugin" && plugin.Configuration.Source != "" {
			return plugin.Configuration.Source
		}
	}

	return "unknown"
}

// Dependencies extracts the declared dependencies plus the parent coordinate.
// Version properties like ${jackson.version} are resolved against the
// properties table; an unresolvable property leaves the version unset so the
// dependency is still visible to identity-based checks.
func (t *MavenTool) Dependencies() []Dependency {
	pom, ok := t.parsePom()
	if !ok {
		return []Dependency{}
	}

	deps := []Dependency{}
	for _, dep := range pom.Dependencies {
		if dep.GroupID == "" || dep.ArtifactID == "" {
			continue
		}
		deps = append(deps, Dependency{
			GroupID:    dep.GroupID,
			ArtifactID: dep.ArtifactID,
			Version:    t.resolveVersion(dep.Version, pom),
		})
	}

	if pom.Parent.GroupID != "" && pom.Parent.ArtifactID != "" {
		deps = append(deps, Dependency{
			GroupID:    pom.Parent.GroupID,
			ArtifactID: pom.Parent.ArtifactID,
			Version:    pom.Parent.Version,
		})
	}

	return deps
}

func (t *MavenTool) parsePom() (pomXML, bool) {
	var pom pomXML

	data, err := os.ReadFile(t.pomFile)
	if err != nil {
		logger.Warnf("Maven: could not read %s: %v", t.pomFile, err)
		return pom, false
	}
	if err := xml.Unmarshal(data, &pom); err != nil {
		logger.Warnf("Maven: could not parse %s: %v", t.pomFile, err)
		return pomXML{}, false
	}
	return pom, true
}

// resolveVersion resolves ${...} property references in a version string.
func (t *MavenTool) resolveVersion(version string, pom pomXML) string {
	if !strings.Contains(version, "${") {
		return version
	}

	propName := strings.TrimSuffix(strings.TrimPrefix(version, "${"), "}")

	if propName == "project.version" || propName == "pom.version" {
		if pom.Version != "" {
			return pom.Version
		}
		return pom.Parent.Version
	}
	if v, ok := pom.Properties.Entries[propName]; ok {
		return v
	}

	logger.Debugf("Maven: could not resolve property %s", propName)
	return ""
}
