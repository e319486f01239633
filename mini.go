//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// mini is a modal terminal text editor.
//
//	mini            browse the current directory
//	mini <file>     edit a file
//	mini <dir>      browse a directory
package main

import (
	"fmt"
	"os"

	"github.com/mini-editor/mini/buffer"
	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/screen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mini:", err)
		os.Exit(1)
	}
}

func run() error {
	var arg string
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	if arg == "--help" || arg == "-h" {
		fmt.Println(buffer.HelpText)
		return nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	clip := clipboard.System{}

	first, err := firstBuffer(arg, dir, clip)
	if err != nil {
		return err
	}

	scr, err := screen.New()
	if err != nil {
		return err
	}
	defer scr.Close()

	w, h := scr.Size()
	disp := display.New(w, h)
	mgr := buffer.NewManager(dir, clip, first)
	mgr.Resize(w, h)
	mgr.Render(disp)
	disp.Flush(scr)

	for {
		input := scr.Poll()

		select {
		case <-scr.Resize:
			w, h = scr.Size()
			disp.Resize(w, h)
			mgr.Resize(w, h)
		default:
		}

		if !mgr.Tick(input) {
			return nil
		}
		if mgr.Render(disp) {
			disp.Flush(scr)
		}
	}
}

// firstBuffer picks the startup buffer from the positional argument:
// nothing for the launch directory, a directory to browse, or a file
// to edit (created on first write when missing).
func firstBuffer(arg, dir string, clip clipboard.Clipboard) (buffer.Buffer, error) {
	if arg == "" {
		files, err := buffer.NewFiles(dir, clip)
		if err != nil {
			return nil, err
		}
		return files, nil
	}
	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		files, err := buffer.NewFiles(arg, clip)
		if err != nil {
			return nil, err
		}
		return files, nil
	case err == nil:
		text, err := buffer.OpenText(arg, clip)
		if err != nil {
			return nil, err
		}
		return text, nil
	case os.IsNotExist(err):
		return buffer.ForceOpenText(arg, clip), nil
	}
	return nil, err
}
