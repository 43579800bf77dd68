package main

import (
	"testing"

	"gotest.tools/v3/assert"
)

func rewriteAll(t *testing.T, registry *ImportRegistry, code string) []bool {
	t.Helper()
	unit := ParseUnit("src/a.ts", []byte(code))
	kept := make([]bool, 0, len(unit.Nodes))
	for _, node := range unit.Nodes {
		kept = append(kept, registry.Rewrite(unit, node))
	}
	return kept
}

func TestTryRegister(t *testing.T) {
	registry := NewImportRegistry()

	assert.Assert(t, registry.TryRegister("fs", "readFile"))
	assert.Assert(t, !registry.TryRegister("fs", "readFile"))
	assert.Assert(t, registry.TryRegister("fs", "writeFile"))
	assert.Assert(t, registry.TryRegister("fs/promises", "readFile"))
	assert.Assert(t, !registry.TryRegister("fs", "writeFile"))
}

func TestRewriteReconstructsImports(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected []string
	}{
		{
			name:     "Named with alias",
			code:     `import { readFile, writeFile as write } from "fs";`,
			expected: []string{"import { readFile, writeFile as write } from 'fs';"},
		},
		{
			name:     "Default",
			code:     `import React from 'react'`,
			expected: []string{"import React from 'react';"},
		},
		{
			name:     "Default and named",
			code:     `import React, { useState } from 'react'`,
			expected: []string{"import React, { useState } from 'react';"},
		},
		{
			name:     "Namespace",
			code:     `import * as path from 'path'`,
			expected: []string{"import * as path from 'path';"},
		},
		{
			name:     "Default and namespace",
			code:     `import d, * as ns from 'm'`,
			expected: []string{"import d, * as ns from 'm';"},
		},
		{
			name:     "Side effect",
			code:     `import "reflect-metadata"`,
			expected: []string{"import 'reflect-metadata';"},
		},
		{
			name:     "Import equals is kept verbatim",
			code:     `import fs = require("fs");`,
			expected: []string{`import fs = require("fs");`},
		},
		{
			name:     "Type only",
			code:     `import type { Stats } from 'fs'`,
			expected: []string{"import type { Stats } from 'fs';"},
		},
		{
			name:     "Inline type modifier",
			code:     `import { type Stats, statSync } from 'fs'`,
			expected: []string{"import { type Stats, statSync } from 'fs';"},
		},
		{
			name:     "Empty named import emits nothing",
			code:     `import {} from 'fs'`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewImportRegistry()
			kept := rewriteAll(t, registry, tt.code)

			assert.DeepEqual(t, kept, []bool{false})
			assert.DeepEqual(t, registry.Entries(), tt.expected)
		})
	}
}

func TestRewriteDeduplicatesBindings(t *testing.T) {
	registry := NewImportRegistry()

	rewriteAll(t, registry, `import { readFile } from 'fs';
import { readFile, writeFile } from 'fs';
import { readFile as rf } from 'fs';
import 'polyfill';
import 'polyfill';
import fs = require('fs');
import fs2 = require('fs');
import fs = require('fs');`)

	assert.DeepEqual(t, registry.Entries(), []string{
		"import { readFile } from 'fs';",
		"import { writeFile } from 'fs';",
		"import { readFile as rf } from 'fs';",
		"import 'polyfill';",
		"import fs = require('fs');",
		"import fs2 = require('fs');",
	})
	assert.Equal(t, registry.Preamble(), `import { readFile } from 'fs';
import { writeFile } from 'fs';
import { readFile as rf } from 'fs';
import 'polyfill';
import fs = require('fs');
import fs2 = require('fs');
`)
}

func TestRewriteDropsFullyRegisteredStatement(t *testing.T) {
	registry := NewImportRegistry()

	rewriteAll(t, registry, `import React, { useState } from 'react';
import React2, { useState as us } from 'react';
import React from 'react';`)

	assert.DeepEqual(t, registry.Entries(), []string{
		"import React, { useState } from 'react';",
		"import React2, { useState as us } from 'react';",
	})
}

func TestRewriteTypeAndValueImportsOfOneBinding(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected []string
	}{
		{
			name: "Value after type only import upgrades it",
			code: `import type { Foo } from 'lib';
import { Foo } from 'lib';`,
			expected: []string{"import { Foo } from 'lib';"},
		},
		{
			name: "Other bindings of the type only import stay types",
			code: `import type { Foo, Bar } from 'lib';
import { Foo, baz } from 'lib';`,
			expected: []string{
				"import { Foo, type Bar } from 'lib';",
				"import { baz } from 'lib';",
			},
		},
		{
			name: "Value after inline type modifier",
			code: `import { type Foo, bar } from 'lib';
import { Foo } from 'lib';`,
			expected: []string{"import { Foo, bar } from 'lib';"},
		},
		{
			name: "Type only default upgraded",
			code: `import type Lib from 'lib';
import Lib from 'lib';`,
			expected: []string{"import Lib from 'lib';"},
		},
		{
			name: "Type after value is a duplicate",
			code: `import { Foo } from 'lib';
import type { Foo } from 'lib';`,
			expected: []string{"import { Foo } from 'lib';"},
		},
		{
			name: "Repeated type only import",
			code: `import type { Foo } from 'lib';
import { type Foo } from 'lib';`,
			expected: []string{"import type { Foo } from 'lib';"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewImportRegistry()
			rewriteAll(t, registry, tt.code)

			assert.DeepEqual(t, registry.Entries(), tt.expected)
		})
	}
}

func TestRewriteKeepsReexportsInBody(t *testing.T) {
	registry := NewImportRegistry()

	kept := rewriteAll(t, registry, `export * from 'lib';
export { a } from 'lib';`)

	assert.DeepEqual(t, kept, []bool{true, true})
	assert.Equal(t, len(registry.Entries()), 0)
}

func TestQuoteSpecifier(t *testing.T) {
	assert.Equal(t, quoteSpecifier("fs"), "'fs'")
	assert.Equal(t, quoteSpecifier("it's"), `'it\'s'`)
}
