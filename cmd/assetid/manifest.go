package main

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"chain-shielded/crypto/keys"
	"chain-shielded/errors"
	"chain-shielded/protocol/asset/derive"
)

var errManifest = errors.New("invalid manifest")

type manifest struct {
	Owner  string          `yaml:"owner"`
	Assets []manifestAsset `yaml:"assets"`
}

type manifestAsset struct {
	Name     string `yaml:"name"`
	Metadata string `yaml:"metadata"`
	Owner    string `yaml:"owner"`
}

// parseManifest decodes a YAML manifest into derivation requests.
// Unknown fields are rejected. Every asset needs an owner,
// either its own or the manifest default.
func parseManifest(data []byte) ([]derive.Request, error) {
	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&m)
	if err != nil {
		return nil, errors.Sub(errManifest, err)
	}

	var defaultOwner *keys.PublicAddress
	if m.Owner != "" {
		defaultOwner = new(keys.PublicAddress)
		err = defaultOwner.UnmarshalText([]byte(m.Owner))
		if err != nil {
			return nil, errors.Sub(errManifest, errors.Wrap(err, "default owner"))
		}
	}

	reqs := make([]derive.Request, 0, len(m.Assets))
	for i, a := range m.Assets {
		req := derive.Request{Name: a.Name, Metadata: a.Metadata}
		switch {
		case a.Owner != "":
			err = req.Owner.UnmarshalText([]byte(a.Owner))
			if err != nil {
				return nil, errors.Sub(errManifest, errors.Wrapf(err, "asset %d owner", i))
			}
		case defaultOwner != nil:
			req.Owner = *defaultOwner
		default:
			return nil, errors.WithDetailf(errManifest, "asset %d (%q) has no owner", i, a.Name)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
