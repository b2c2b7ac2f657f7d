// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/wealdtech/go-treehash-cache/demo"
)

func main() {
	checkpoint := &demo.Checkpoint{Epoch: 100}

	cache, err := checkpoint.NewTreeHashCache(0)
	if err != nil {
		log.Fatalf("building checkpoint cache: %v", err)
	}
	root, err := cache.TreeHashRoot()
	if err != nil {
		log.Fatalf("computing checkpoint root: %v", err)
	}
	fmt.Printf("checkpoint root before: %s\n", hex.EncodeToString(root))

	checkpoint.Epoch = 101
	cache.ResetModifications()
	if err := checkpoint.UpdateTreeHashCache(cache); err != nil {
		log.Fatalf("updating checkpoint cache: %v", err)
	}
	root, err = cache.TreeHashRoot()
	if err != nil {
		log.Fatalf("recomputing checkpoint root: %v", err)
	}
	fmt.Printf("checkpoint root after epoch bump: %s\n", hex.EncodeToString(root))

	roots := &demo.ValidatorRoots{Roots: make([][32]byte, 4)}
	for i := range roots.Roots {
		roots.Roots[i][0] = byte(i + 1)
	}

	listCache, err := roots.NewTreeHashCache(0)
	if err != nil {
		log.Fatalf("building validator roots cache: %v", err)
	}
	listRoot, err := listCache.TreeHashRoot()
	if err != nil {
		log.Fatalf("computing validator roots root: %v", err)
	}
	fmt.Printf("validator roots root before append: %s\n", hex.EncodeToString(listRoot))

	roots.Roots = append(roots.Roots, [32]byte{0xff})
	listCache.ResetModifications()
	if err := roots.UpdateTreeHashCache(listCache); err != nil {
		log.Fatalf("updating validator roots cache: %v", err)
	}
	listRoot, err = listCache.TreeHashRoot()
	if err != nil {
		log.Fatalf("recomputing validator roots root: %v", err)
	}
	fmt.Printf("validator roots root after append: %s\n", hex.EncodeToString(listRoot))
}
