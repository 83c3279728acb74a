// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/caltext"
	"cloudeng.io/caltext/calstore"
	"cloudeng.io/errors"
)

func printRecord(r calstore.Record) {
	fmt.Fprintf(stdout, "%v\t%v\t%v\t%v\n", r.Name, r.Value.Kind(), r.Value, r.Created)
}

func storePut(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*storeFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	kind, err := caltext.ParseKind(args[1])
	if err != nil {
		return err
	}
	v, err := caltext.Parse(kind, args[2])
	if err != nil {
		return err
	}
	r, err := store.Put(ctx, args[0], v)
	if err != nil {
		return err
	}
	printRecord(r)
	return nil
}

func storeGet(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*storeFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, name := range args {
		r, err := store.Get(ctx, name)
		if err != nil {
			errs.Append(err)
			continue
		}
		printRecord(r)
	}
	return errs.Err()
}

func storeList(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*storeFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	kinds := make([]caltext.Kind, len(args))
	for i, a := range args {
		if kinds[i], err = caltext.ParseKind(a); err != nil {
			return err
		}
	}
	records, err := store.List(ctx, kinds...)
	if err != nil {
		return err
	}
	for _, r := range records {
		printRecord(r)
	}
	return nil
}

func storeDelete(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*storeFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, name := range args {
		errs.Append(store.Delete(ctx, name))
	}
	return errs.Err()
}

func storeExport(ctx context.Context, values interface{}, _ []string) error {
	cl := values.(*storeFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	if err := store.Export(ctx, stdout); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout)
	return err
}

func storeSeed(ctx context.Context, values interface{}, _ []string) error {
	cl := values.(*storeFlags)
	ctx, store, cfg, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	if len(cfg.Values) == 0 {
		return fmt.Errorf("no values found in configuration file %q", cl.Config)
	}
	if err := store.PutAll(ctx, cfg.Values...); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "stored %v values\n", len(cfg.Values))
	return nil
}
