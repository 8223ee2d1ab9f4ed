// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// writeFile atomically replaces fname by the output of write.  The
// temporary file lives next to fname, so that it can be renamed into
// place.  If write fails, fname is left untouched.
func writeFile(fname string, write func(w io.Writer) error) error {
	pf, err := renameio.NewPendingFile(fname,
		renameio.WithTempDir(filepath.Dir(fname)),
		renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := write(pf); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
