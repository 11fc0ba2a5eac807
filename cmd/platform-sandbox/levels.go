package main

// builtinLevel spans a grid of four rooms across and two down
const builtinLevel = `; tilerunner sandbox
:door sandbox
################################################################################
#                                                                              #
#                                                                              #
#                                                               B              #
#                                vvvvvv                                        #
#                                                                              #
#                                  g                                           #
#                                             %%                               #
#         b                                                       c            #
#                                                                              #
#                       #####k                              w                  #
#               =====     H                             m                      #
#                         H                           ######                   #
#     =======             H                                                    #
#                         H         ~             $                            #
#                         H                     =====                          #
#  ..  ...          %%%   H                                                    #
#   @   D     s         f H                 a     ^^          o       K   G    #
###############################   ####################    ######################
#                                                                              #
#                                                                              #
#                             #  T      x                                      #
#                              ^^^                F                            #
################################################################################
`
