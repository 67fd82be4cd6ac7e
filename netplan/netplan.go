// Copyright 2026 Whitestack.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

// Package netplan reads interface addresses from netplan configuration
// documents.
//
// Documents are decoded into a generic [yaml.Node] tree only, so no Go types
// get constructed from the document's content or its tags.
package netplan

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping signals a document element that should be a mapping, but
	// isn't.
	ErrNotMapping = errors.New("not a mapping")
	// ErrNotSequence signals an addresses element that isn't a sequence.
	ErrNotSequence = errors.New("not a sequence")
	// ErrNoAddresses signals an interface with an empty list of addresses.
	ErrNoAddresses = errors.New("empty addresses list")
	// ErrInvalidAddress signals an address entry that is neither a plain
	// address nor an address with options.
	ErrInvalidAddress = errors.New("invalid address entry")
)

// Address returns the first address of the named interface in the
// “network.ethernets” section of a netplan document, such as
// “192.168.199.41/24”.
//
// Missing “network”, “ethernets”, and interface sections are treated as
// empty, and an interface without “addresses” has the empty address “”.
// However, an interface with an empty addresses list is an error
// ([ErrNoAddresses]).
func Address(doc string, iface string) (string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return "", fmt.Errorf("cannot parse netplan document: %w", err)
	}
	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = top.Content[0]
	}
	network, err := mapping(top, "document")
	if err != nil {
		return "", err
	}
	network, err = mapping(lookup(network, "network"), "network")
	if err != nil {
		return "", err
	}
	ethernets, err := mapping(lookup(network, "ethernets"), "network.ethernets")
	if err != nil {
		return "", err
	}
	path := "network.ethernets." + iface
	ifaceNode, err := mapping(lookup(ethernets, iface), path)
	if err != nil {
		return "", err
	}
	addresses := resolve(lookup(ifaceNode, "addresses"))
	if addresses == nil {
		return "", nil
	}
	path += ".addresses"
	if addresses.Kind != yaml.SequenceNode {
		return "", fmt.Errorf("%s: %w", path, ErrNotSequence)
	}
	if len(addresses.Content) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoAddresses)
	}
	return address(resolve(addresses.Content[0]), path)
}

// address returns the address of an addresses list entry, which is either a
// plain scalar, or a single key mapping of the address to its options, such
// as “10.0.0.1/24: {lifetime: 0}”.
func address(entry *yaml.Node, path string) (string, error) {
	switch {
	case entry.Kind == yaml.ScalarNode:
		return entry.Value, nil
	case entry.Kind == yaml.MappingNode && len(entry.Content) == 2 &&
		entry.Content[0].Kind == yaml.ScalarNode:
		return entry.Content[0].Value, nil
	}
	return "", fmt.Errorf("%s[0]: %w", path, ErrInvalidAddress)
}

// mapping returns the specified node if it is a mapping, or nil (for an empty
// mapping) if the node is missing. Otherwise, it returns an error.
func mapping(n *yaml.Node, path string) (*yaml.Node, error) {
	n = resolve(n)
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w", path, ErrNotMapping)
	}
	return n, nil
}

// mergeTag is the resolved tag of “<<” merge keys.
const mergeTag = "!!merge"

// lookup returns the value node for key in a mapping node, or nil if there is
// no such key. A nil mapping node has no keys. If a key appears multiple
// times, the last value wins. Keys not found directly are looked up in the
// mappings merged in using “<<”, in the order they are merged.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil {
		return nil
	}
	var value *yaml.Node
	var merged []*yaml.Node
	for idx := 0; idx+1 < len(m.Content); idx += 2 {
		k := m.Content[idx]
		if k.Kind != yaml.ScalarNode {
			continue
		}
		if k.ShortTag() == mergeTag {
			merged = append(merged, m.Content[idx+1])
			continue
		}
		if k.Value == key {
			value = m.Content[idx+1]
		}
	}
	if value != nil {
		return value
	}
	for _, merge := range merged {
		merge = resolve(merge)
		switch merge.Kind {
		case yaml.MappingNode:
			if value = lookup(merge, key); value != nil {
				return value
			}
		case yaml.SequenceNode:
			for _, item := range merge.Content {
				if item = resolve(item); item.Kind != yaml.MappingNode {
					continue
				}
				if value = lookup(item, key); value != nil {
					return value
				}
			}
		}
	}
	return nil
}

// resolve follows aliases to their anchored nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
