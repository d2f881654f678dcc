// Package java implements the semantic-service library for the Java host
// language: package/import/class/member/annotation services plus the
// relational-mapping helpers that sit on top of them.
package java

import (
	sitter "github.com/smacker/go-tree-sitter"
	javaGrammar "github.com/smacker/go-tree-sitter/java"
)

const extension = "java"

// javaLang implements engine.Language. Grounded on the teacher's
// goProvider (internal/lang/golang/golang.go), which binds a single
// concrete grammar package behind the same seam.
type javaLang struct{}

func (javaLang) SitterLanguage() *sitter.Language { return javaGrammar.GetLanguage() }
func (javaLang) Extension() string                { return extension }

// Grammar returns the engine.Language binding for Java.
func Grammar() javaLang { return javaLang{} }
