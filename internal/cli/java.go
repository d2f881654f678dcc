package cli

import (
	"encoding/base64"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core-sub005/internal/command"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// newJavaCommand builds the "java" subcommand tree: one leaf per §4.5
// command service, kebab-case flags mapping to that command's
// lowerCamelCase input fields.
func newJavaCommand() *cobra.Command {
	java := &cobra.Command{
		Use:   "java",
		Short: "Commands targeting Java source",
	}
	java.AddCommand(
		newGetMainClassCommand(),
		newCreateFileCommand(),
		newCreateMappedClassCommand(),
		newAddFieldCommand(),
		newCreateRepositoryCommand(),
		newRenameTypeCommand(),
		newGetMappedClassesCommand(),
		newGetMappedSuperclassesCommand(),
		newGetMappedClassInfoCommand(),
	)
	return java
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func flagStringSlice(cmd *cobra.Command, name string) []string {
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}

// decodeBase64Flag decodes a base64 CLI flag value, returning (nil, nil)
// when the flag was left empty (no override supplied).
func decodeBase64Flag(cmd *cobra.Command, name string) ([]byte, error) {
	raw := flagString(cmd, name)
	if raw == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, model.InvalidInput(name, "is not valid base64")
	}
	return data, nil
}

func newGetMainClassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-main-class",
		Short: "Find the public class with a conventional program-entry method",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := command.GetMainClass(command.GetMainClassInput{Cwd: flagString(cmd, "cwd")})
			setExitCode(emit(env))
			return nil
		},
	}
	return cmd
}

func newCreateFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-file",
		Short: "Create a new source file from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := command.CreateFileInput{
				Cwd:           flagString(cmd, "cwd"),
				PackageName:   flagString(cmd, "package"),
				FileName:      flagString(cmd, "file-name"),
				TemplateKind:  javaTemplateKind(flagString(cmd, "template-kind")),
				SourceDirKind: flagString(cmd, "source-dir-kind"),
			}
			env := command.CreateFile(in)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("package", "", "dotted package name")
	cmd.Flags().String("file-name", "", "simple type name")
	cmd.Flags().String("template-kind", "class", "class|interface|enum|record|annotation")
	cmd.Flags().String("source-dir-kind", "main", "main|test")
	return cmd
}

func newCreateMappedClassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-mapped-class",
		Short: "Create a new entity class with table mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := command.CreateMappedClassInput{
				Cwd:         flagString(cmd, "cwd"),
				PackageName: flagString(cmd, "package"),
				FileName:    flagString(cmd, "file-name"),
			}
			before := readBeforeOrEmpty("")
			env := command.CreateMappedClass(in)
			printDiffIfVerbose(flagBool(cmd, "verbose"), "create-mapped-class", "", before, env)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("package", "", "dotted package name")
	cmd.Flags().String("file-name", "", "simple type name")
	return cmd
}

func newAddFieldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-field",
		Short: "Add a field to a file's sole top-level class",
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := decodeBase64Flag(cmd, "source")
			if err != nil {
				setExitCode(emit(model.FromError(err)))
				return nil
			}
			var nullable *bool
			if cmd.Flags().Changed("column-nullable") {
				v := flagBool(cmd, "column-nullable")
				nullable = &v
			}
			path := flagString(cmd, "file-path")
			before := readBeforeOrEmpty(path)
			in := command.AddFieldInput{
				Cwd:            flagString(cmd, "cwd"),
				FilePath:       path,
				SourceOverride: override,
				FieldName:      flagString(cmd, "field-name"),
				FieldType:      flagString(cmd, "field-type"),
				Modifiers:      flagStringSlice(cmd, "modifier"),
				Annotations:    flagStringSlice(cmd, "annotation"),
				ColumnName:     flagString(cmd, "column-name"),
				ColumnNullable: nullable,
				ColumnLength:   flagInt(cmd, "column-length"),
			}
			env := command.AddField(in)
			printDiffIfVerbose(flagBool(cmd, "verbose"), "add-field", path, before, env)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("file-path", "", "path of the file to edit")
	cmd.Flags().String("source", "", "base64-encoded unsaved buffer override")
	cmd.Flags().String("field-name", "", "")
	cmd.Flags().String("field-type", "", "")
	cmd.Flags().StringSlice("modifier", nil, "repeatable, e.g. --modifier private")
	cmd.Flags().StringSlice("annotation", nil, "repeatable, pre-formatted e.g. --annotation @NotNull")
	cmd.Flags().String("column-name", "", "")
	cmd.Flags().Bool("column-nullable", false, "")
	cmd.Flags().Int("column-length", 0, "")
	return cmd
}

func newCreateRepositoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-repository",
		Short: "Create a repository interface for a mapped class",
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := decodeBase64Flag(cmd, "supertype-source")
			if err != nil {
				setExitCode(emit(model.FromError(err)))
				return nil
			}
			path := flagString(cmd, "file-path")
			before := readBeforeOrEmpty("")
			in := command.CreateRepositoryInput{
				Cwd:                 flagString(cmd, "cwd"),
				FilePath:            path,
				SupertypeSimpleName: flagString(cmd, "supertype-name"),
				SupertypeSource:     override,
			}
			env := command.CreateRepository(in)
			printDiffIfVerbose(flagBool(cmd, "verbose"), "create-repository", "", before, env)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("file-path", "", "path of the mapped class")
	cmd.Flags().String("supertype-name", "", "simple name of a supertype missing from the project")
	cmd.Flags().String("supertype-source", "", "base64-encoded source to use for supertype-name")
	return cmd
}

func newRenameTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-type",
		Short: "Rename a class and every usage in its file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagString(cmd, "file-path")
			before := readBeforeOrEmpty(path)
			in := command.RenameTypeInput{
				Cwd:      flagString(cmd, "cwd"),
				FilePath: path,
				NewName:  flagString(cmd, "new-name"),
				Line:     flagInt(cmd, "line"),
				Column:   flagInt(cmd, "column"),
			}
			env := command.RenameType(in)
			printDiffIfVerbose(flagBool(cmd, "verbose"), "rename-type", path, before, env)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("file-path", "", "")
	cmd.Flags().String("new-name", "", "")
	cmd.Flags().Int("line", 0, "1-based line of the identifier under cursor")
	cmd.Flags().Int("column", 0, "1-based column of the identifier under cursor")
	return cmd
}

func newGetMappedClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-mapped-classes",
		Short: "List every class carrying the entity marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := command.GetMappedClasses(command.GetMappedClassesInput{Cwd: flagString(cmd, "cwd")})
			setExitCode(emit(env))
			return nil
		},
	}
}

func newGetMappedSuperclassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-mapped-superclasses",
		Short: "List every class carrying the mapped-superclass marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := command.GetMappedSuperclasses(command.GetMappedClassesInput{Cwd: flagString(cmd, "cwd")})
			setExitCode(emit(env))
			return nil
		},
	}
}

func newGetMappedClassInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-mapped-class-info",
		Short: "Report a mapped class's id type and recommended repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := decodeBase64Flag(cmd, "supertype-source")
			if err != nil {
				setExitCode(emit(model.FromError(err)))
				return nil
			}
			in := command.GetMappedClassInfoInput{
				Cwd:                 flagString(cmd, "cwd"),
				FilePath:            flagString(cmd, "file-path"),
				SupertypeSimpleName: flagString(cmd, "supertype-name"),
				SupertypeSource:     override,
			}
			env := command.GetMappedClassInfo(in)
			setExitCode(emit(env))
			return nil
		},
	}
	cmd.Flags().String("file-path", "", "")
	cmd.Flags().String("supertype-name", "", "")
	cmd.Flags().String("supertype-source", "", "")
	return cmd
}

func javaTemplateKind(s string) java.TemplateKind {
	return java.TemplateKind(s)
}
