package compat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet holds the compatibility rules for one target Java version.
// All three fields are optional; a nil map or slice means no rules of that
// kind for the target.
type RuleSet struct {
	// RemovedModules lists dependency identities (group:artifact) that the
	// JDK stopped bundling at this version.
	RemovedModules []string `yaml:"removedModules"`

	// MinVersions maps dependency identities to the lowest library version
	// known to work on this Java version.
	MinVersions map[string]string `yaml:"minVersions"`

	// RecommendedVersions maps dependency identities to the version
	// suggested for best support on this Java version.
	RecommendedVersions map[string]string `yaml:"recommendedVersions"`
}

// KnowledgeBase is the version-keyed compatibility rule table. It is built
// once at startup and read-only afterwards.
type KnowledgeBase struct {
	versions map[string]RuleSet
}

// Lookup returns the rule set for a target version. The second return value
// is false when the knowledge base has no entry for the target, in which
// case every check yields no findings.
func (kb *KnowledgeBase) Lookup(target string) (RuleSet, bool) {
	rs, ok := kb.versions[target]
	return rs, ok
}

// Targets returns the number of target versions the knowledge base covers.
func (kb *KnowledgeBase) Targets() int {
	return len(kb.versions)
}

// BuiltinKnowledgeBase returns the compiled-in rule table covering the
// Java 11, 17, and 21 upgrade paths.
func BuiltinKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{versions: map[string]RuleSet{
		"11": {
			RemovedModules: []string{
				"javax.xml.bind:jaxb-api",
				"javax.activation:activation",
				"javax.xml.ws:jaxws-api",
				"javax.annotation:javax.annotation-api",
			},
			MinVersions: map[string]string{
				"org.springframework.boot:spring-boot-starter-parent": "2.1.0",
				"org.springframework:spring-core":                     "5.1.0",
				"org.hibernate:hibernate-core":                        "5.3.0",
				"junit:junit":                                         "4.12",
				"org.mockito:mockito-core":                            "2.23.0",
			},
		},
		"17": {
			MinVersions: map[string]string{
				"org.springframework.boot:spring-boot-starter-parent": "2.5.0",
				"org.springframework:spring-core":                     "5.3.0",
				"org.hibernate:hibernate-core":                        "5.4.24",
				"org.junit.jupiter:junit-jupiter":                     "5.7.0",
				"org.mockito:mockito-core":                            "3.6.0",
				"com.fasterxml.jackson.core:jackson-databind":         "2.12.0",
			},
			RecommendedVersions: map[string]string{
				"org.springframework.boot:spring-boot-starter-parent": "3.0.0",
				"jakarta.persistence:jakarta.persistence-api":         "3.0.0",
			},
		},
		"21": {
			MinVersions: map[string]string{
				"org.springframework.boot:spring-boot-starter-parent": "3.0.0",
				"org.springframework:spring-core":                     "6.0.0",
				"org.hibernate:hibernate-core":                        "6.1.0",
				"org.junit.jupiter:junit-jupiter":                     "5.9.0",
				"org.mockito:mockito-core":                            "4.0.0",
				"com.fasterxml.jackson.core:jackson-databind":         "2.14.0",
			},
			RecommendedVersions: map[string]string{
				"org.springframework.boot:spring-boot-starter-parent": "3.2.0",
				"jakarta.persistence:jakarta.persistence-api":         "3.1.0",
			},
		},
	}}
}

// LoadRuleFile reads a YAML rules file keyed by target version, in the same
// shape as the built-in table:
//
//	"17":
//	  removedModules: [...]
//	  minVersions:
//	    "com.acme:widget": "4.0.0"
//	  recommendedVersions:
//	    "com.acme:widget": "5.0.0"
func LoadRuleFile(path string) (map[string]RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file %s: %w", path, err)
	}

	rules := map[string]RuleSet{}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}
	return rules, nil
}

// Merge overlays extra rules onto the knowledge base and returns a new
// knowledge base; the receiver is not modified. Min and recommended entries
// override per identity; removed modules are appended without duplicates.
func (kb *KnowledgeBase) Merge(extra map[string]RuleSet) *KnowledgeBase {
	merged := make(map[string]RuleSet, len(kb.versions))
	for target, rs := range kb.versions {
		merged[target] = rs
	}

	for target, add := range extra {
		base := merged[target]

		if len(add.RemovedModules) > 0 {
			seen := map[string]bool{}
			for _, m := range base.RemovedModules {
				seen[m] = true
			}
			modules := append([]string{}, base.RemovedModules...)
			for _, m := range add.RemovedModules {
				if !seen[m] {
					modules = append(modules, m)
					seen[m] = true
				}
			}
			base.RemovedModules = modules
		}

		base.MinVersions = overlay(base.MinVersions, add.MinVersions)
		base.RecommendedVersions = overlay(base.RecommendedVersions, add.RecommendedVersions)
		merged[target] = base
	}

	return &KnowledgeBase{versions: merged}
}

func overlay(base, add map[string]string) map[string]string {
	if len(add) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(add))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range add {
		out[k] = v
	}
	return out
}
