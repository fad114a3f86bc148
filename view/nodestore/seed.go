// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package nodestore

import "github.com/absmach/opcuaview/view"

// Seed populates store with a minimal address space rooted at the
// well-known Objects folder, organizing two demo devices of a shared device
// type; Device1 exposes one variable (Temperature), Device2 none. It exists so the demo HTTP server has something to Browse
// without an external OPC UA server to mirror.
func Seed(store *Store) {
	device1 := view.NewNumericNodeID(2, 1001)
	device2 := view.NewNumericNodeID(2, 1002)
	temperature := view.NewNumericNodeID(2, 2001)
	deviceType := view.NewNumericNodeID(2, 3001)

	store.AddNode(view.ObjectsFolderNodeID, view.NodeClassObject,
		view.QualifiedName{NamespaceIndex: 0, Name: "Objects"},
		view.LocalizedText{Locale: "en", Text: "Objects"},
		[]view.ReferenceKind{
			{
				ReferenceTypeID: view.OrganizesNodeID,
				Targets: []view.ExpandedNodeID{
					view.Local(device1),
					view.Local(device2),
				},
			},
		},
	)

	store.AddNode(device1, view.NodeClassObject,
		view.QualifiedName{NamespaceIndex: 2, Name: "Device1"},
		view.LocalizedText{Locale: "en", Text: "Device 1"},
		[]view.ReferenceKind{
			{ReferenceTypeID: view.OrganizesNodeID, IsInverse: true, Targets: []view.ExpandedNodeID{view.Local(view.ObjectsFolderNodeID)}},
			{ReferenceTypeID: view.HasComponentNodeID, Targets: []view.ExpandedNodeID{view.Local(temperature)}},
			{ReferenceTypeID: view.HasTypeDefinitionNodeID, Targets: []view.ExpandedNodeID{view.Local(deviceType)}},
		},
	)

	store.AddNode(device2, view.NodeClassObject,
		view.QualifiedName{NamespaceIndex: 2, Name: "Device2"},
		view.LocalizedText{Locale: "en", Text: "Device 2"},
		[]view.ReferenceKind{
			{ReferenceTypeID: view.OrganizesNodeID, IsInverse: true, Targets: []view.ExpandedNodeID{view.Local(view.ObjectsFolderNodeID)}},
			{ReferenceTypeID: view.HasTypeDefinitionNodeID, Targets: []view.ExpandedNodeID{view.Local(deviceType)}},
		},
	)

	store.AddNode(temperature, view.NodeClassVariable,
		view.QualifiedName{NamespaceIndex: 2, Name: "Temperature"},
		view.LocalizedText{Locale: "en", Text: "Temperature"},
		[]view.ReferenceKind{
			{ReferenceTypeID: view.HasComponentNodeID, IsInverse: true, Targets: []view.ExpandedNodeID{view.Local(device1)}},
		},
	)

	store.AddNode(deviceType, view.NodeClassObjectType,
		view.QualifiedName{NamespaceIndex: 2, Name: "DeviceType"},
		view.LocalizedText{Locale: "en", Text: "Device Type"},
		[]view.ReferenceKind{
			{ReferenceTypeID: view.HasTypeDefinitionNodeID, IsInverse: true, Targets: []view.ExpandedNodeID{view.Local(device1), view.Local(device2)}},
		},
	)
}
