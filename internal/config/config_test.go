package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

func configPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".gitmoji", "config.json")
}

func TestLoad(t *testing.T) {
	t.Run("debería devolver los valores por defecto si no hay archivo", func(t *testing.T) {
		path := configPath(t)

		config, err := Load(path)
		if err != nil {
			t.Fatalf("no se esperaba un error: %v", err)
		}

		if config.AutoStage || config.ScopePrompt || config.SignedCommit || config.IssuePrompt {
			t.Error("todos los booleanos deberían ser false por defecto")
		}
		if config.EmojiFormat != models.FormatCode {
			t.Errorf("el formato por defecto debería ser code, obtuvo: %s", config.EmojiFormat)
		}
		if config.Language != "en" {
			t.Errorf("el idioma por defecto debería ser en, obtuvo: %s", config.Language)
		}

		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("Load no debería crear el archivo")
		}
	})

	t.Run("debería manejar JSON malformado", func(t *testing.T) {
		path := configPath(t)
		_ = os.MkdirAll(filepath.Dir(path), 0755)

		if err := os.WriteFile(path, []byte("{malformed json"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Fatal("se esperaba un error al cargar JSON malformado")
		}

		var appErr *domainErrors.AppError
		if !errors.As(err, &appErr) || appErr.Type != domainErrors.TypeParse {
			t.Errorf("se esperaba un error de tipo PARSE, obtuvo: %v", err)
		}
	})

	t.Run("debería completar campos ausentes con los valores por defecto", func(t *testing.T) {
		path := configPath(t)
		_ = os.MkdirAll(filepath.Dir(path), 0755)

		if err := os.WriteFile(path, []byte(`{"auto_stage": true}`), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := Load(path)
		if err != nil {
			t.Fatalf("no se esperaba un error: %v", err)
		}

		if !config.AutoStage {
			t.Error("auto_stage debería ser true")
		}
		if config.EmojiFormat != models.FormatCode {
			t.Errorf("el formato ausente debería ser code, obtuvo: %s", config.EmojiFormat)
		}
	})

	t.Run("debería rechazar un emoji_format desconocido", func(t *testing.T) {
		path := configPath(t)
		_ = os.MkdirAll(filepath.Dir(path), 0755)

		if err := os.WriteFile(path, []byte(`{"emoji_format": "banana"}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Fatal("se esperaba un error con un emoji_format desconocido")
		}

		var appErr *domainErrors.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("se esperaba un AppError, obtuvo: %v", err)
		}
		if appErr.Type != domainErrors.TypeParse {
			t.Errorf("se esperaba un error de tipo PARSE, obtuvo: %v", err)
		}
		if appErr.Context["emoji_format"] != "banana" {
			t.Errorf("el contexto debería incluir el valor rechazado, obtuvo: %v", appErr.Context)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("debería hacer round-trip sin cambios", func(t *testing.T) {
		path := configPath(t)

		original := &Config{
			AutoStage:    true,
			EmojiFormat:  models.FormatGlyph,
			ScopePrompt:  true,
			SignedCommit: false,
			IssuePrompt:  true,
			Language:     "es",
		}

		if err := Save(path, original); err != nil {
			t.Fatalf("no se esperaba un error al guardar: %v", err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("no se esperaba un error al cargar: %v", err)
		}

		if *loaded != *original {
			t.Errorf("round-trip alteró la configuración: %+v != %+v", loaded, original)
		}
	})

	t.Run("debería crear el directorio si no existe", func(t *testing.T) {
		path := configPath(t)

		if err := Save(path, &Config{EmojiFormat: models.FormatCode, Language: "en"}); err != nil {
			t.Fatalf("no se esperaba un error: %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("el archivo debería existir: %v", err)
		}
	})

	t.Run("no debería dejar archivos temporales", func(t *testing.T) {
		path := configPath(t)

		if err := Save(path, &Config{EmojiFormat: models.FormatCode, Language: "en"}); err != nil {
			t.Fatalf("no se esperaba un error: %v", err)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("se esperaba un único archivo, hay %d", len(entries))
		}
	})
}

func TestAccessors(t *testing.T) {
	t.Run("deberían reflejar una edición externa en la siguiente lectura", func(t *testing.T) {
		path := configPath(t)

		if err := Save(path, &Config{EmojiFormat: models.FormatCode, Language: "en"}); err != nil {
			t.Fatal(err)
		}

		autoStage, err := IsAutoStage(path)
		if err != nil || autoStage {
			t.Errorf("auto_stage debería ser false, obtuvo: %v (err: %v)", autoStage, err)
		}

		// otro proceso edita el archivo
		if err := Save(path, &Config{AutoStage: true, EmojiFormat: models.FormatGlyph, SignedCommit: true, Language: "en"}); err != nil {
			t.Fatal(err)
		}

		autoStage, err = IsAutoStage(path)
		if err != nil || !autoStage {
			t.Errorf("auto_stage debería ser true tras la edición externa (err: %v)", err)
		}

		format, err := EmojiFormat(path)
		if err != nil || format != models.FormatGlyph {
			t.Errorf("el formato debería ser glyph tras la edición externa (err: %v)", err)
		}

		signed, err := IsSignedCommitEnabled(path)
		if err != nil || !signed {
			t.Errorf("signed_commit debería ser true tras la edición externa (err: %v)", err)
		}
	})
}
