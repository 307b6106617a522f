package main

type Commands struct {
	List ListCmd `cmd:""`
